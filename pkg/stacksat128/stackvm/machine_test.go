package stackvm

import (
	"errors"
	"testing"
)

func run(t *testing.T, b *Builder) (bool, error) {
	t.Helper()
	return NewMachine().Run(b.Script())
}

func TestAddSub(t *testing.T) {
	ok, err := run(t, NewBuilder().Push(3).Push(4).Add().Push(7).Equal())
	if err != nil || !ok {
		t.Fatalf("3+4==7 failed: ok=%v err=%v", ok, err)
	}
	ok, err = run(t, NewBuilder().Push(10).Push(4).Sub().Push(6).Equal())
	if err != nil || !ok {
		t.Fatalf("10-4==6 failed: ok=%v err=%v", ok, err)
	}
}

func TestDupDrop2Dup2Drop(t *testing.T) {
	ok, err := run(t, NewBuilder().Push(5).Dup().Add().Push(10).Equal())
	if err != nil || !ok {
		t.Fatalf("dup+add failed: ok=%v err=%v", ok, err)
	}
	ok, err = run(t, NewBuilder().Push(1).Push(2).TwoDup().Add().Push(3).Equal())
	// stack after 2DUP: 1 2 1 2 ; ADD consumes top two (1,2) -> 3 ; compare with 3
	if err != nil || !ok {
		t.Fatalf("2dup+add failed: ok=%v err=%v", ok, err)
	}
	ok, err = run(t, NewBuilder().Push(1).Push(2).Push(3).Drop().Push(2).Equal())
	if err != nil || !ok {
		t.Fatalf("drop failed: ok=%v err=%v", ok, err)
	}
	ok, err = run(t, NewBuilder().Push(1).Push(2).Push(3).TwoDrop().Push(1).Equal())
	if err != nil || !ok {
		t.Fatalf("2drop failed: ok=%v err=%v", ok, err)
	}
}

func TestSwapRot(t *testing.T) {
	ok, err := run(t, NewBuilder().Push(1).Push(2).Swap().Push(1).Equal())
	if err != nil || !ok {
		t.Fatalf("swap failed: ok=%v err=%v", ok, err)
	}
	// ROT: x1 x2 x3 -> x2 x3 x1; top becomes x1 == 1
	ok, err = run(t, NewBuilder().Push(1).Push(2).Push(3).Rot().Push(1).Equal())
	if err != nil || !ok {
		t.Fatalf("rot failed: ok=%v err=%v", ok, err)
	}
}

func TestPickAtAndRollAt(t *testing.T) {
	// stack: 10 20 30 (top=30); PickAt(2) copies 10 to top
	ok, err := run(t, NewBuilder().Push(10).Push(20).Push(30).PickAt(2).Push(10).Equal())
	if err != nil || !ok {
		t.Fatalf("pick at depth 2 failed: ok=%v err=%v", ok, err)
	}
	// RollAt(2) removes 10 and pushes on top, leaving 20 30 10
	ok, err = run(t, NewBuilder().Push(10).Push(20).Push(30).RollAt(2).Push(10).Equal())
	if err != nil || !ok {
		t.Fatalf("roll at depth 2 failed: ok=%v err=%v", ok, err)
	}
}

func TestRuntimePickDepth(t *testing.T) {
	// A genuine value-to-offset lookup: push a 4-entry table (depth0=40,
	// depth1=30,depth2=20,depth3=10), then push the runtime index 2 and
	// bare-Pick; expect the table entry at depth 2 (20).
	ok, err := run(t, NewBuilder().
		Push(10).Push(20).Push(30).Push(40).
		Push(2).Pick().
		Push(20).Equal())
	if err != nil || !ok {
		t.Fatalf("runtime-depth pick failed: ok=%v err=%v", ok, err)
	}
}

func TestRuntimeRollDepth(t *testing.T) {
	ok, err := run(t, NewBuilder().
		Push(10).Push(20).Push(30).Push(40).
		Push(2).Roll(). // removes 20, pushes on top
		Push(20).Equal())
	if err != nil || !ok {
		t.Fatalf("runtime-depth roll failed: ok=%v err=%v", ok, err)
	}
}

func TestIfElse(t *testing.T) {
	ok, err := run(t, NewBuilder().Push(1).If().Push(42).Else().Push(0).EndIf())
	if err != nil || !ok {
		t.Fatalf("if-true branch failed: ok=%v err=%v", ok, err)
	}
	ok, err = run(t, NewBuilder().Push(0).If().Push(42).Else().Push(0).EndIf())
	if err != nil {
		t.Fatalf("if-false branch errored: %v", err)
	}
	if ok {
		t.Fatal("if-false branch should leave 0 on top (falsy)")
	}
}

func TestIfWithoutElse(t *testing.T) {
	ok, err := run(t, NewBuilder().Push(1).Push(1).If().Push(9).EndIf().Push(9).Equal())
	if err != nil || !ok {
		t.Fatalf("if-without-else true branch failed: ok=%v err=%v", ok, err)
	}
}

func TestComparisons(t *testing.T) {
	ok, err := run(t, NewBuilder().Push(5).Push(3).GreaterThan())
	if err != nil || !ok {
		t.Fatalf("5>3 failed: ok=%v err=%v", ok, err)
	}
	ok, err = run(t, NewBuilder().Push(3).Push(3).GreaterThanOrEqual())
	if err != nil || !ok {
		t.Fatalf("3>=3 failed: ok=%v err=%v", ok, err)
	}
	ok, err = run(t, NewBuilder().Push(2).Push(3).LessThan())
	if err != nil || !ok {
		t.Fatalf("2<3 failed: ok=%v err=%v", ok, err)
	}
}

func TestEqualVerifySuccess(t *testing.T) {
	// EQUALVERIFY consumes both operands, leaving the 1 beneath them on top.
	ok, err := run(t, NewBuilder().Push(1).Push(7).Push(7).EqualVerify().Push(1).Equal())
	if err != nil || !ok {
		t.Fatalf("equalverify success path failed: ok=%v err=%v", ok, err)
	}
}

func TestEqualVerifyFailureIsNotAnError(t *testing.T) {
	ok, err := run(t, NewBuilder().Push(7).Push(8).EqualVerify().Push(1).Equal())
	if err != nil {
		t.Fatalf("equalverify mismatch should not be an error, got %v", err)
	}
	if ok {
		t.Fatal("equalverify mismatch should fail the script")
	}
}

func TestAltStackRoundTrip(t *testing.T) {
	ok, err := run(t, NewBuilder().Push(9).ToAltStack().Push(1).FromAltStack().Push(9).Equal())
	if err != nil || !ok {
		t.Fatalf("alt-stack round trip failed: ok=%v err=%v", ok, err)
	}
}

func TestNonEmptyAltStackAtEndIsError(t *testing.T) {
	_, err := run(t, NewBuilder().Push(9).ToAltStack())
	if !errors.Is(err, ErrNonEmptyAltStack) {
		t.Fatalf("expected ErrNonEmptyAltStack, got %v", err)
	}
}

func TestStackUnderflow(t *testing.T) {
	_, err := run(t, NewBuilder().Add())
	if !errors.Is(err, ErrStackUnderflow) {
		t.Fatalf("expected ErrStackUnderflow, got %v", err)
	}
}

func TestUnbalancedControlFlow(t *testing.T) {
	_, err := run(t, NewBuilder().Push(1).If())
	if !errors.Is(err, ErrUnbalancedControlFlow) {
		t.Fatalf("expected ErrUnbalancedControlFlow, got %v", err)
	}
}

func TestStackOverflow(t *testing.T) {
	m := NewMachineWithLimit(3)
	b := NewBuilder().Push(1).Push(2).Push(3).Push(4)
	_, err := m.Run(b.Script())
	if !errors.Is(err, ErrStackOverflow) {
		t.Fatalf("expected ErrStackOverflow, got %v", err)
	}
}

func TestEmptyScriptIsFalse(t *testing.T) {
	ok, err := run(t, NewBuilder())
	if err != nil {
		t.Fatalf("empty script errored: %v", err)
	}
	if ok {
		t.Fatal("empty script (empty stack) should report false")
	}
}

func TestPeakElementsTracksHighWaterMark(t *testing.T) {
	m := NewMachine()
	_, err := m.Run(NewBuilder().Push(1).Push(2).Push(3).Drop().Drop().Script())
	if err != nil {
		t.Fatalf("run errored: %v", err)
	}
	if m.PeakElements() != 3 {
		t.Fatalf("PeakElements() = %d, want 3", m.PeakElements())
	}
}
