//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalOptionsFile(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	page, err := tf.WritePage("opts.html", "Red", "Green", "Blue")
	require.NoError(t, err, "Failed to write page")

	_, err = tf.WriteOptions("target = \"#slides\"\nstart_index = 3\ntransition_ms = 0\n")
	require.NoError(t, err, "Failed to write options")

	err = tf.StartApp(page)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("3/3"), "start_index from the options file should apply")
	require.True(t, tf.SeePlain("Blue"), "Should show the third slide")
}

func TestInitWritesOptions(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	page, err := tf.WritePage("init.html", "One", "Two")
	require.NoError(t, err, "Failed to write page")

	err = tf.StartApp("-init", "-target", "#slides", "-loop", page)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.SeePlain("Wrote"), "Should report the written file")

	path := filepath.Join(workspace, ".ezslider.toml")
	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 2*time.Second, 25*time.Millisecond, "Options file should exist")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "#slides")
	require.Contains(t, string(data), "loop = true")
	require.Contains(t, string(data), "transition_ms = 250")
}
