package device

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// fakeBacklight lays out a sysfs-style backlight directory.
func fakeBacklight(t *testing.T, current, maxValue string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "backlight", "acpi_video0")
	writeFile(t, filepath.Join(dir, "brightness"), current)
	writeFile(t, filepath.Join(dir, "max_brightness"), maxValue)
	return dir
}

func TestBacklightGetSet(t *testing.T) {
	ctx := context.Background()
	b := NewBacklight(fakeBacklight(t, "60\n", "120\n"))

	require.NoError(t, b.RequestPermission(ctx))

	got, err := b.Get(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9)

	require.NoError(t, b.Set(ctx, 0.25))
	raw, err := os.ReadFile(filepath.Join(b.Dir(), "brightness"))
	require.NoError(t, err)
	assert.Equal(t, "30", string(raw))

	require.NoError(t, b.Set(ctx, 1.7))
	got, err = b.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestBacklightErrors(t *testing.T) {
	ctx := context.Background()

	missing := NewBacklight(filepath.Join(t.TempDir(), "nothing"))
	assert.ErrorIs(t, missing.RequestPermission(ctx), ErrUnsupported)
	_, err := missing.Get(ctx)
	assert.ErrorIs(t, err, ErrUnsupported)

	broken := NewBacklight(fakeBacklight(t, "10", "0"))
	_, err = broken.Get(ctx)
	assert.Error(t, err)

	garbage := NewBacklight(fakeBacklight(t, "bright", "100"))
	_, err = garbage.Get(ctx)
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, NewBacklight(fakeBacklight(t, "1", "2")).Set(cancelled, 0.5), context.Canceled)
}

func TestBacklightPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	dir := fakeBacklight(t, "10", "100")
	require.NoError(t, os.Chmod(filepath.Join(dir, "brightness"), 0444))

	err := NewBacklight(dir).RequestPermission(context.Background())
	permErr, ok := IsPermission(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "open", permErr.Op)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestFindBacklight(t *testing.T) {
	root := t.TempDir()
	_, err := FindBacklight(root)
	assert.ErrorIs(t, err, ErrUnsupported)

	require.NoError(t, os.Mkdir(filepath.Join(root, "nv_backlight"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "intel_backlight"), 0755))

	dir, err := FindBacklight(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "intel_backlight"), dir)

	_, err = FindBacklight(filepath.Join(root, "absent"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestPowerSupply(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "AC", "type"), "Mains\n")
	writeFile(t, filepath.Join(root, "BAT0", "type"), "Battery\n")
	writeFile(t, filepath.Join(root, "BAT0", "capacity"), "87\n")

	dir, err := FindPowerSupply(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "BAT0"), dir)

	level, err := NewPowerSupply(dir).Level(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.87, level, 1e-9)

	_, err = FindPowerSupply(filepath.Join(root, "AC"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestIsPermission(t *testing.T) {
	_, ok := IsPermission(nil)
	assert.False(t, ok)
	_, ok = IsPermission(errors.New("other"))
	assert.False(t, ok)

	wrapped := errors.Join(errors.New("context"), &PermissionError{Op: "write", Path: "/x", Err: os.ErrPermission})
	permErr, ok := IsPermission(wrapped)
	require.True(t, ok)
	assert.Equal(t, "/x", permErr.Path)
	assert.Contains(t, permErr.Error(), "permission_denied")
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	var b Brightness = Unavailable{}
	assert.ErrorIs(t, b.RequestPermission(ctx), ErrUnsupported)
	_, err := b.Get(ctx)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, b.Set(ctx, 1), ErrUnsupported)
}

// scriptedBattery returns the queued levels in order, then repeats the last one.
type scriptedBattery struct {
	mu     sync.Mutex
	levels []float64
	reads  int
}

func (b *scriptedBattery) Level(context.Context) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.reads
	if i >= len(b.levels) {
		i = len(b.levels) - 1
	}
	b.reads++
	return b.levels[i], nil
}

func TestWatchBatteryReportsChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	battery := &scriptedBattery{levels: []float64{0.5, 0.5, 0.49, 0.49, 0.48}}
	got := make(chan float64, 10)
	done := make(chan struct{})
	go func() {
		WatchBattery(ctx, battery, time.Millisecond, func(level float64) { got <- level })
		close(done)
	}()

	for _, want := range []float64{0.5, 0.49, 0.48} {
		select {
		case level := <-got:
			assert.Equal(t, want, level)
		case <-time.After(2 * time.Second):
			t.Fatalf("no battery update for %v", want)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Empty(t, got, "unchanged levels are not reported")
}

func TestWatchBatteryUnsupported(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	calls := 0
	WatchBattery(ctx, NoBattery{}, time.Millisecond, func(float64) { calls++ })
	assert.Zero(t, calls)
}

// recordingBrightness records Set calls and can block or fail them.
type recordingBrightness struct {
	mu        sync.Mutex
	permErr   error
	setErr    error
	current   float64
	sets      []float64
	gate      chan struct{}
	entered   chan struct{}
	permCalls int
}

func (r *recordingBrightness) RequestPermission(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.permCalls++
	return r.permErr
}

func (r *recordingBrightness) Get(context.Context) (float64, error) {
	return r.current, nil
}

func (r *recordingBrightness) Set(_ context.Context, f float64) error {
	if r.entered != nil {
		r.entered <- struct{}{}
	}
	if r.gate != nil {
		<-r.gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets = append(r.sets, f)
	return r.setErr
}

func TestBrightnessSyncConnect(t *testing.T) {
	target := &recordingBrightness{current: 0.42}
	s := NewBrightnessSync(target)
	assert.False(t, s.Enabled())

	s.Update(0.9)
	s.Wait()
	assert.Empty(t, target.sets, "updates before Connect are dropped")

	current, ok := s.Connect(context.Background())
	require.True(t, ok)
	assert.Equal(t, 0.42, current)
	assert.True(t, s.Enabled())

	s.Update(0.3)
	s.Wait()
	assert.Equal(t, []float64{0.3}, target.sets)
}

func TestBrightnessSyncPermissionDenied(t *testing.T) {
	target := &recordingBrightness{permErr: &PermissionError{Op: "open", Path: "brightness", Err: os.ErrPermission}}
	s := NewBrightnessSync(target)

	_, ok := s.Connect(context.Background())
	assert.False(t, ok)
	assert.False(t, s.Enabled())

	s.Update(0.5)
	s.Wait()
	assert.Empty(t, target.sets)
}

func TestBrightnessSyncLatestWins(t *testing.T) {
	target := &recordingBrightness{gate: make(chan struct{}), entered: make(chan struct{}, 10)}
	s := NewBrightnessSync(target)
	_, ok := s.Connect(context.Background())
	require.True(t, ok)

	s.Update(0.2)
	select {
	case <-target.entered:
	case <-time.After(time.Second):
		t.Fatal("first write never started")
	}

	for _, f := range []float64{0.3, 0.4, 0.5} {
		s.Update(f)
	}
	close(target.gate)
	s.Wait()

	assert.Equal(t, []float64{0.2, 0.5}, target.sets)
}

func TestBrightnessSyncDisablesOnRevokedPermission(t *testing.T) {
	target := &recordingBrightness{}
	s := NewBrightnessSync(target)
	_, ok := s.Connect(context.Background())
	require.True(t, ok)

	target.mu.Lock()
	target.setErr = &PermissionError{Op: "write", Path: "brightness", Err: os.ErrPermission}
	target.mu.Unlock()

	s.Update(0.6)
	s.Wait()
	assert.False(t, s.Enabled())

	s.Update(0.7)
	s.Wait()
	assert.Equal(t, []float64{0.6}, target.sets)
}

func TestBrightnessSyncKeepsGoingOnOtherErrors(t *testing.T) {
	target := &recordingBrightness{setErr: errors.New("i2c timeout")}
	s := NewBrightnessSync(target)
	_, ok := s.Connect(context.Background())
	require.True(t, ok)

	s.Update(0.6)
	s.Wait()
	s.Update(0.7)
	s.Wait()

	assert.True(t, s.Enabled())
	assert.Equal(t, []float64{0.6, 0.7}, target.sets)
}

func TestDetectWithExplicitDirs(t *testing.T) {
	dir := fakeBacklight(t, "5", "10")
	b, ok := DetectBrightness(dir).(*Backlight)
	require.True(t, ok)
	assert.Equal(t, dir, b.Dir())

	_, ok = DetectBattery(t.TempDir()).(*PowerSupply)
	assert.True(t, ok)
}
