package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) { *r.log = append(*r.log, r.name+":"+string(e.Type)) }

func TestDispatchOrder(t *testing.T) {
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}

	d := NewDispatcher()
	d.Subscribe(StartPlaced, a)
	d.Subscribe(StartPlaced, b)
	d.Subscribe(GoalPlaced, b)

	d.Dispatch(Event{Type: StartPlaced})
	d.Dispatch(Event{Type: GoalPlaced})
	d.Dispatch(Event{Type: GridCleared})

	assert.Equal(t, []string{"a:StartPlaced", "b:StartPlaced", "b:GoalPlaced"}, log)
}

func TestUnsubscribe(t *testing.T) {
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}

	d := NewDispatcher()
	d.Subscribe(CellReset, a)
	d.Subscribe(CellReset, b)
	d.Unsubscribe(CellReset, a)
	d.Unsubscribe(GridCleared, a)

	d.Dispatch(Event{Type: CellReset})
	assert.Equal(t, []string{"b:CellReset"}, log)
}

func TestSubscribeAllAndListenerFunc(t *testing.T) {
	var got []EventType
	d := NewDispatcher()
	d.SubscribeAll(ListenerFunc(func(e Event) { got = append(got, e.Type) }), AllTypes...)

	for _, typ := range AllTypes {
		d.Dispatch(Event{Type: typ, Data: CellData{}})
	}
	assert.Equal(t, AllTypes, got)
}
