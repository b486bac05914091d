package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_DrainPreservesOrderAndEmpties(t *testing.T) {
	q := NewQueue()
	q.Success("one")
	q.Error("two")
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	assert.Equal(t, []Notification{
		{Kind: KindSuccess, Message: "one"},
		{Kind: KindError, Message: "two"},
	}, got)
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func TestMulti_FansOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	m := Multi{a, b, LogNotifier{}, Discard{}}

	m.Success("saved")
	m.Error("broken")

	for _, r := range []*Recorder{a, b} {
		assert.Equal(t, []string{"saved"}, r.Messages(KindSuccess))
		assert.Equal(t, []string{"broken"}, r.Messages(KindError))
	}
}

func TestRecorder_Last(t *testing.T) {
	r := &Recorder{}
	_, ok := r.Last()
	assert.False(t, ok)

	r.Error("first")
	r.Success("second")
	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, Notification{Kind: KindSuccess, Message: "second"}, last)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "error", KindError.String())
}
