package notify

// Recorder keeps every notification it receives, in order. Used in tests.
type Recorder struct {
	All []Notification
}

func (r *Recorder) Success(msg string) {
	r.All = append(r.All, Notification{Kind: KindSuccess, Message: msg})
}

func (r *Recorder) Error(msg string) {
	r.All = append(r.All, Notification{Kind: KindError, Message: msg})
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.All) == 0 {
		return Notification{}, false
	}
	return r.All[len(r.All)-1], true
}

// Messages returns the recorded messages of the given kind.
func (r *Recorder) Messages(kind Kind) []string {
	var out []string
	for _, n := range r.All {
		if n.Kind == kind {
			out = append(out, n.Message)
		}
	}
	return out
}
