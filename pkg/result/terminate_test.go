package result

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deathEnv = "RESULT_DEATH_TEST"

// expectTermination runs the calling test again in a child process with
// deathEnv set, where fn is expected to kill the process.
func expectTermination(t *testing.T, fn func(), wantMsg string) {
	t.Helper()

	if os.Getenv(deathEnv) == t.Name() {
		fn()
		// reaching here means fn returned; exit cleanly so the parent notices
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^"+t.Name()+"$", "-test.count=1")
	cmd.Env = append(os.Environ(), deathEnv+"="+t.Name())
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "process survived, err=%v stderr=%s", err, stderr.String())
	assert.NotEqual(t, 0, exitErr.ExitCode())
	assert.Contains(t, stderr.String(), wantMsg)
}

func TestTryErr_OnOkTerminates(t *testing.T) {
	expectTermination(t, func() {
		_ = Ok[int, string](5).TryErr()
	}, "called TryErr on an Ok value")
}

func TestTryOk_OnErrTerminates(t *testing.T) {
	expectTermination(t, func() {
		_ = Err[int]("boom").TryOk()
	}, "called TryOk on an Err value")
}

func TestUnwrap_OnErrTerminates(t *testing.T) {
	expectTermination(t, func() {
		_ = Err[int]("boom").Unwrap()
	}, "Err(boom)")
}

func TestExpect_UsesCallerMessage(t *testing.T) {
	expectTermination(t, func() {
		_ = Err[string](3).Expect("config must load")
	}, "config must load")
}

func TestTerminate_NotRecoverable(t *testing.T) {
	expectTermination(t, func() {
		defer func() { _ = recover() }()
		_ = Err[int]("boom").Unwrap()
	}, "called Unwrap on an Err value")
}
