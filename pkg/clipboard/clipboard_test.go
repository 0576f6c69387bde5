package clipboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
)

func setupMockWriter(ctrl *gomock.Controller, name string, err error) *MockWriter {
	mock := NewMockWriter(ctrl)
	mock.EXPECT().Name().Return(name).AnyTimes()
	mock.EXPECT().WriteText(gomock.Any()).Return(err).Times(1)
	return mock
}

func TestCopier_FirstWriterSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := setupMockWriter(ctrl, "first", nil)
	second := NewMockWriter(ctrl) // must not be called

	name, err := New(first, second).Copy("banner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "first" {
		t.Errorf("Copy() writer = %q, want %q", name, "first")
	}
}

func TestCopier_FallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := setupMockWriter(ctrl, "system", ErrUnavailable)
	second := NewMockWriter(ctrl)
	second.EXPECT().Name().Return("osc52").AnyTimes()
	second.EXPECT().WriteText("banner").Return(nil)

	name, err := New(first, second).Copy("banner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "osc52" {
		t.Errorf("Copy() writer = %q, want %q", name, "osc52")
	}
}

func TestCopier_AllFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	boom := errors.New("boom")
	first := setupMockWriter(ctrl, "system", ErrUnavailable)
	second := setupMockWriter(ctrl, "osc52", boom)

	name, err := New(first, second).Copy("banner")
	if err == nil {
		t.Fatal("expected error when every writer fails")
	}
	if name != "" {
		t.Errorf("Copy() writer = %q, want empty", name)
	}
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, boom) {
		t.Errorf("expected joined errors, got %v", err)
	}
	if !strings.Contains(err.Error(), "system:") || !strings.Contains(err.Error(), "osc52:") {
		t.Errorf("error should name each writer, got %q", err.Error())
	}
}

func TestCopier_NoWriters(t *testing.T) {
	if _, err := New().Copy("banner"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestCopier_SetLoggerIgnoresNil(t *testing.T) {
	c := New()
	c.SetLogger(nil)
	if c.logger == nil {
		t.Error("SetLogger(nil) should keep the existing logger")
	}
}

func TestOSC52_WriteText(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("STY", "")

	var buf bytes.Buffer
	if err := (OSC52{Out: &buf}).WriteText("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "\x1b]52;c;") {
		t.Errorf("expected OSC 52 prefix, got %q", got)
	}
	if !strings.Contains(got, "aGVsbG8=") {
		t.Errorf("expected base64 payload, got %q", got)
	}
}

func TestOSC52_Tmux(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")

	var buf bytes.Buffer
	if err := (OSC52{Out: &buf}).WriteText("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1bPtmux;") {
		t.Errorf("expected tmux passthrough, got %q", buf.String())
	}
}

func TestOSC52_NoOutput(t *testing.T) {
	if err := (OSC52{}).WriteText("hello"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestWriterNames(t *testing.T) {
	if (System{}).Name() != "system" {
		t.Error("System name should be 'system'")
	}
	if (OSC52{}).Name() != "osc52" {
		t.Error("OSC52 name should be 'osc52'")
	}
}
