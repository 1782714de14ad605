package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestPrinter_Writes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := New(&buf)
	p.Print("a")
	p.Println(" b")
	if got := buf.String(); got != "a b\n" {
		t.Errorf("output = %q", got)
	}
}

func TestFromContext_RoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), &buf)
	FromContext(ctx).Println("report")
	if got := buf.String(); got != "report\n" {
		t.Errorf("output = %q", got)
	}
}

func TestFromContext_DefaultsToStdout(t *testing.T) {
	t.Parallel()
	p := FromContext(context.Background())
	if p.Writer() != os.Stdout {
		t.Error("default printer should write to stdout")
	}
}
