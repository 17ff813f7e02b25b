package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv forces every snapshot to be rewritten when it is set
const UpdateEnv = "HOLDEM_UPDATE_SNAPSHOTS"

// Validate compares obj, encoded as indented JSON, with testdata/<name>.json
// A missing snapshot is written instead of compared.
func Validate(t *testing.T, name string, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	filename := filepath.Join("testdata", name+".json")
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv(UpdateEnv) != "" {
		if err := write(filename, objJSON); err != nil {
			t.Fatal(err)
		}

		return
	}

	if err != nil {
		t.Fatal(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s, set %s to rewrite it", filename, UpdateEnv)
	}
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644) // nolint:gosec
}
