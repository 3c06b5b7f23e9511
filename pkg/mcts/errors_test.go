package mcts

import (
	"errors"
	"testing"
)

func TestInvalidArgumentErrorIs(t *testing.T) {
	err := &InvalidArgumentError{Arg: "max_iter", Value: -1}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("errors.Is(%v, ErrInvalidArgument) = false, want true", err)
	}
}

func TestIllegalTransitionErrorIs(t *testing.T) {
	err := &IllegalTransitionError{Move: nil}
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("errors.Is(%v, ErrIllegalTransition) = false, want true", err)
	}
}

func TestRecoverUserCallback(t *testing.T) {
	var err error
	func() {
		defer recoverUserCallback(&err)
		panic("boom")
	}()

	if err == nil {
		t.Fatal("recoverUserCallback left err nil after a panic")
	}
	if !errors.Is(err, ErrUserCallbackFailed) {
		t.Fatalf("errors.Is(%v, ErrUserCallbackFailed) = false, want true", err)
	}
	var ucf *UserCallbackFailureError
	if !errors.As(err, &ucf) {
		t.Fatalf("errors.As(%v, *UserCallbackFailureError) = false, want true", err)
	}
	if ucf.Recovered != "boom" {
		t.Errorf("Recovered = %v, want %q", ucf.Recovered, "boom")
	}
}
