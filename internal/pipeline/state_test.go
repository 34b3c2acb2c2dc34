package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestStageError(t *testing.T) {
	cause := errors.New("model down")
	err := &StageError{Stage: StateSummarizing, Err: cause}

	if !strings.Contains(err.Error(), "summarizing") {
		t.Errorf("Error() = %q, want the stage name", err.Error())
	}
	if !strings.Contains(err.Error(), "model down") {
		t.Errorf("Error() = %q, want the cause", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("StageError should unwrap to its cause")
	}
}
