package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionConfirm) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set(ActionConfirm) should be visible via Has")
	}

	f.Clear()
	if f.Has(ActionConfirm) {
		t.Error("Clear should remove all actions")
	}

	// Zero value frames must not panic
	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    int
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"unrelated", []Action{ActionConfirm}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.want {
				t.Errorf("Direction() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionCancel.String() != "Cancel" {
		t.Errorf("ActionCancel.String() = %q", ActionCancel.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
