package script

import (
	"math/rand"
	"testing"

	"github.com/stacksat128/stacksat128/pkg/stacksat128/hash"
	"github.com/stacksat128/stacksat128/pkg/stacksat128/stackvm"
)

// runFull executes EmitPushMessage(msg)++EmitCompute(len(msg))++EmitVerify(expected)
// on a fresh Machine. Machine intentionally exposes no stack accessor, so
// this is the only sanctioned way to observe whether a computed digest
// matches expected.
func runFull(t *testing.T, msg []byte, expected hash.Digest) (bool, error) {
	t.Helper()

	pushScript, err := EmitPushMessage(msg)
	if err != nil {
		t.Fatalf("EmitPushMessage(%d bytes): %v", len(msg), err)
	}
	computeScript, err := EmitCompute(len(msg))
	if err != nil {
		t.Fatalf("EmitCompute(%d): %v", len(msg), err)
	}
	verifyScript := EmitVerify(expected)

	full := stackvm.NewBuilder().Append(pushScript).Append(computeScript).Append(verifyScript).Script()
	return stackvm.NewMachine().Run(full)
}

func TestEmitterEquivalence(t *testing.T) {
	lengths := []int{0, 15, 32, 43, 64, 128, 256, 511, 1024}
	rng := rand.New(rand.NewSource(42))

	for _, l := range lengths {
		msg := make([]byte, l)
		rng.Read(msg)

		expected := hash.Hash(msg)
		ok, err := runFull(t, msg, expected)
		if err != nil {
			t.Fatalf("len=%d: script execution error: %v", l, err)
		}
		if !ok {
			t.Fatalf("len=%d: verify against the true digest failed", l)
		}
	}
}

func TestEmitterRejectsWrongDigest(t *testing.T) {
	lengths := []int{0, 43, 128}
	for _, l := range lengths {
		msg := make([]byte, l)
		for i := range msg {
			msg[i] = byte(i)
		}

		wrong := hash.Hash(msg)
		wrong[0] ^= 0xFF // guaranteed mismatch

		ok, err := runFull(t, msg, wrong)
		if err != nil {
			t.Fatalf("len=%d: script execution error: %v", l, err)
		}
		if ok {
			t.Fatalf("len=%d: verify against a wrong digest unexpectedly succeeded", l)
		}
	}
}

func TestEmitComputeRejectsOversizeMessage(t *testing.T) {
	if _, err := EmitCompute(MaxMessageBytes + 1); err == nil {
		t.Fatal("EmitCompute should reject a message longer than MaxMessageBytes")
	}
	if _, err := EmitCompute(-1); err == nil {
		t.Fatal("EmitCompute should reject a negative length")
	}
}

func TestEmitPushMessageRejectsOversizeMessage(t *testing.T) {
	if _, err := EmitPushMessage(make([]byte, MaxMessageBytes+1)); err == nil {
		t.Fatal("EmitPushMessage should reject a message longer than MaxMessageBytes")
	}
}

func TestPaddedNibbleLenIsMultipleOfRate(t *testing.T) {
	for l := 0; l < 200; l++ {
		n := paddedNibbleLen(l)
		if n%hash.RateNibbles != 0 {
			t.Fatalf("paddedNibbleLen(%d) = %d, not a multiple of %d", l, n, hash.RateNibbles)
		}
		if n <= 0 {
			t.Fatalf("paddedNibbleLen(%d) = %d, want positive", l, n)
		}
	}
}

func TestResourceBudgetStaysBounded(t *testing.T) {
	// spec §5: suggested <=1000 working elements above the input message.
	msg := make([]byte, 128)
	pushScript, err := EmitPushMessage(msg)
	if err != nil {
		t.Fatalf("EmitPushMessage: %v", err)
	}
	computeScript, err := EmitCompute(len(msg))
	if err != nil {
		t.Fatalf("EmitCompute: %v", err)
	}
	full := stackvm.NewBuilder().Append(pushScript).Append(computeScript).Script()

	m := stackvm.NewMachine()
	if _, err := m.Run(full); err != nil {
		t.Fatalf("run errored: %v", err)
	}
	paddedLen := paddedNibbleLen(len(msg))
	overhead := m.PeakElements() - paddedLen
	if overhead > 1000 {
		t.Fatalf("peak working overhead = %d elements, want <=1000 above the %d-nibble message", overhead, paddedLen)
	}
}
