package engine

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bitlens/bitlens/schema"
)

func TestSetLoggerEnablesTracing(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	l := mustLayout(t, 8, mustField(t, "x", 0, 8, schema.KindUint))
	if _, err := Read(l, "x", []byte{0xAB}); err != nil {
		t.Fatal(err)
	}
	if err := Write(l, "x", Uint(0x5A), []byte{0x00}); err != nil {
		t.Fatal(err)
	}

	if logs.FilterMessageSnippet("read").Len() == 0 {
		t.Error("debug logger installed but no read trace emitted")
	}
	if logs.FilterMessageSnippet("write").Len() == 0 {
		t.Error("debug logger installed but no write trace emitted")
	}
}

func TestSetLoggerNopDisablesTracing(t *testing.T) {
	SetLogger(zap.NewNop())
	if debug {
		t.Error("nop logger must not enable tracing")
	}
}
