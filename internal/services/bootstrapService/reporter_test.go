package bootstrapservice

import (
	"bytes"
	"strings"
	"testing"
)

func TestActivationHint(t *testing.T) {
	hint := ActivationHint("/home/user/jupyter-venv")

	want := "source /home/user/jupyter-venv/bin/activate && jupyter notebook"
	if hint != want {
		t.Errorf("ActivationHint = %q, want %q", hint, want)
	}
}

func TestFinishVenvPrintsActivationHint(t *testing.T) {
	out := &bytes.Buffer{}
	r := &Reporter{Out: out}

	r.FinishVenv("my-venv")

	if !strings.Contains(out.String(), ActivationHint("my-venv")) {
		t.Errorf("FinishVenv output missing activation hint, got:\n%s", out.String())
	}
}

func TestFinishSystemNamesPackage(t *testing.T) {
	out := &bytes.Buffer{}
	r := &Reporter{Out: out}

	r.FinishSystem("notebook")

	if !strings.Contains(out.String(), "notebook") {
		t.Errorf("FinishSystem output should name the package, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "jupyter notebook") {
		t.Errorf("FinishSystem output should tell the user how to start, got:\n%s", out.String())
	}
}
