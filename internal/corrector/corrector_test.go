package corrector

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/redpen-dev/redpen/internal/fallback"
	"github.com/redpen-dev/redpen/internal/langtool"
)

// fakeRemote returns a canned result or error.
type fakeRemote struct {
	text string
	err  error
}

func (f *fakeRemote) Correct(ctx context.Context, text string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// recordingReporter captures reported events.
type recordingReporter struct {
	events []Event
}

func (r *recordingReporter) Report(e Event) {
	r.events = append(r.events, e)
}

func newService(t *testing.T, remote RemoteChecker, reporter Reporter) *Service {
	t.Helper()
	svc, err := New(Config{Remote: remote, Reporter: reporter})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return svc
}

func TestNew_RequiresRemote(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New() without remote should fail")
	}
}

func TestCorrect_RemoteSuccess(t *testing.T) {
	svc := newService(t, &fakeRemote{text: "The cat is here."}, nil)

	res, err := svc.Correct(context.Background(), "teh cat iz here.")
	if err != nil {
		t.Fatalf("Correct() error = %v", err)
	}
	if res.CorrectedText != "The cat is here." {
		t.Errorf("CorrectedText = %q", res.CorrectedText)
	}
	if res.UsedFallback {
		t.Error("UsedFallback = true, want false")
	}
	if res.ErrorMessage != "" {
		t.Errorf("ErrorMessage = %q, want empty", res.ErrorMessage)
	}
}

func TestCorrect_RemoteFailureFallsBack(t *testing.T) {
	kinds := []langtool.Kind{
		langtool.KindTimeout,
		langtool.KindServiceUnavailable,
		langtool.KindUnreachable,
	}
	in := "i recieve the seperate occured items"

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			remoteErr := &langtool.RemoteError{Kind: kind, Err: errors.New("boom")}
			svc := newService(t, &fakeRemote{err: remoteErr}, nil)

			res, err := svc.Correct(context.Background(), in)
			if err != nil {
				t.Fatalf("Correct() error = %v", err)
			}
			if !res.UsedFallback {
				t.Error("UsedFallback = false, want true")
			}
			if want := fallback.Correct(in); res.CorrectedText != want {
				t.Errorf("CorrectedText = %q, want fallback output %q", res.CorrectedText, want)
			}
			if res.ErrorMessage != kind.Message() {
				t.Errorf("ErrorMessage = %q, want %q", res.ErrorMessage, kind.Message())
			}
		})
	}
}

func TestCorrect_UnclassifiedRemoteError(t *testing.T) {
	svc := newService(t, &fakeRemote{err: errors.New("unexpected")}, nil)

	res, err := svc.Correct(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Correct() error = %v", err)
	}
	if !res.UsedFallback || res.ErrorMessage != "unexpected" {
		t.Errorf("Result = %+v", res)
	}
}

func TestCorrect_Validation(t *testing.T) {
	svc := newService(t, &fakeRemote{text: "ok"}, nil)

	t.Run("empty text", func(t *testing.T) {
		_, err := svc.Correct(context.Background(), "")
		assertValidation(t, err)
	})

	t.Run("blank text", func(t *testing.T) {
		_, err := svc.Correct(context.Background(), "   \n\t ")
		assertValidation(t, err)
	})

	t.Run("at the limit passes", func(t *testing.T) {
		if _, err := svc.Correct(context.Background(), strings.Repeat("a", MaxTextLen)); err != nil {
			t.Errorf("Correct() error = %v, want nil", err)
		}
	})

	t.Run("over the limit fails", func(t *testing.T) {
		_, err := svc.Correct(context.Background(), strings.Repeat("a", MaxTextLen+1))
		assertValidation(t, err)
	})
}

func TestCorrect_AlwaysReturnsText(t *testing.T) {
	// Any valid input yields non-empty corrected text whether or not the
	// remote checker works.
	services := map[string]*Service{
		"remote ok":   newService(t, &fakeRemote{text: "Fine."}, nil),
		"remote down": newService(t, &fakeRemote{err: &langtool.RemoteError{Kind: langtool.KindUnreachable}}, nil),
	}
	for name, svc := range services {
		t.Run(name, func(t *testing.T) {
			res, err := svc.Correct(context.Background(), "fine.")
			if err != nil {
				t.Fatalf("Correct() error = %v", err)
			}
			if res.CorrectedText == "" {
				t.Error("CorrectedText is empty")
			}
		})
	}
}

func TestCorrect_ReportsEvents(t *testing.T) {
	t.Run("success path", func(t *testing.T) {
		rec := &recordingReporter{}
		svc := newService(t, &fakeRemote{text: "ok"}, rec)

		if _, err := svc.Correct(context.Background(), "ok"); err != nil {
			t.Fatalf("Correct() error = %v", err)
		}
		assertEventKinds(t, rec.events, EventRemoteAttempt, EventRemoteSuccess)
	})

	t.Run("fallback path", func(t *testing.T) {
		rec := &recordingReporter{}
		remoteErr := &langtool.RemoteError{Kind: langtool.KindTimeout}
		svc := newService(t, &fakeRemote{err: remoteErr}, rec)

		if _, err := svc.Correct(context.Background(), "ok"); err != nil {
			t.Fatalf("Correct() error = %v", err)
		}
		assertEventKinds(t, rec.events, EventRemoteAttempt, EventFallback)
	})

	t.Run("events share an attempt id", func(t *testing.T) {
		rec := &recordingReporter{}
		svc := newService(t, &fakeRemote{text: "ok"}, rec)

		if _, err := svc.Correct(context.Background(), "ok"); err != nil {
			t.Fatalf("Correct() error = %v", err)
		}
		if len(rec.events) != 2 || rec.events[0].ID != rec.events[1].ID {
			t.Errorf("events do not share an id: %+v", rec.events)
		}
	})
}

func assertValidation(t *testing.T, err error) {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func assertEventKinds(t *testing.T, events []Event, want ...EventKind) {
	t.Helper()
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Errorf("event[%d].Kind = %v, want %v", i, events[i].Kind, k)
		}
	}
}
