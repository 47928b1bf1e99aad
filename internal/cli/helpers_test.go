package cli_test

import (
	"context"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/aretw0/towers"
	"github.com/aretw0/towers/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		skip, take int
		want       []int
		turns      int
	}{
		{"everything", 0, 0, []int{0, 1, 2, 3, 4, 5, 6, 7}, 8},
		{"skip only", 6, 0, []int{6, 7}, 8},
		{"take only", 0, 2, []int{0, 1}, 2},
		{"skip past the end", 20, 0, nil, 8},
		{"skip and take", 1, 1, []int{1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := towers.NewSession(3, "Joe")
			require.NoError(t, err)

			var got []int
			for i := range cli.Window(s.Iter().All(), tt.skip, tt.take) {
				got = append(got, i)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.turns, s.Turns(), "no turn is played past the window")
		})
	}
}

func TestSignalContext_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sc := cli.NewSignalContext(parent)
	defer sc.Cancel()

	cancel()

	select {
	case <-sc.Done():
	case <-time.After(time.Second):
		t.Fatal("signal context not cancelled with its parent")
	}
	assert.ErrorIs(t, sc.Err(), context.Canceled)
	assert.Nil(t, sc.Signal())
}

func TestSignalContext_CapturesInterrupt(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("os.Interrupt cannot be sent to a process on windows")
	}

	sc := cli.NewSignalContext(context.Background())
	defer sc.Cancel()

	self, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, self.Signal(os.Interrupt))

	select {
	case <-sc.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("signal context not cancelled by SIGINT")
	}
	assert.Equal(t, os.Interrupt, sc.Signal())
}
