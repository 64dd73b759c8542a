package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/detector"
	"github.com/valpere/romawi/internal/translator"
)

func TestRunner_New_DefaultWorkers(t *testing.T) {
	r := New(Config{})
	if r.config.Workers <= 0 {
		t.Errorf("expected positive default workers, got %d", r.config.Workers)
	}
}

func TestRunner_Execute_PreservesOrder(t *testing.T) {
	var reqs []internal.TranslationRequest
	for i := 0; i < 100; i++ {
		letter := string(rune('A' + i%26))
		reqs = append(reqs, internal.TranslationRequest{
			ID:   fmt.Sprintf("line %d", i+1),
			Text: letter,
			Mode: internal.TextToRoman,
		})
	}

	r := New(Config{Workers: 4})
	res, err := r.Execute(context.Background(), reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Succeeded != 100 || res.Failed != 0 {
		t.Fatalf("expected 100/0, got %d/%d", res.Succeeded, res.Failed)
	}
	for i, out := range res.Results {
		back := translator.Translate(out.Output, internal.RomanToText)
		if back.Output != reqs[i].Text {
			t.Errorf("result %d out of order: %q decodes to %q, want %q", i, out.Output, back.Output, reqs[i].Text)
		}
	}
}

func TestRunner_Execute_CountsFailures(t *testing.T) {
	reqs := []internal.TranslationRequest{
		{ID: "line 1", Text: "IX,IV", Mode: internal.RomanToText},
		{ID: "line 2", Text: "123", Mode: internal.RomanToText},
		{Text: "", Mode: internal.RomanToText},
	}

	res, err := New(Config{Workers: 2}).Execute(context.Background(), reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Succeeded != 1 || res.Failed != 2 {
		t.Fatalf("expected 1/2, got %d/%d", res.Succeeded, res.Failed)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(res.Errors))
	}
	if !errors.Is(res.Errors[0], translator.ErrInvalidCharacterSet) || !strings.HasPrefix(res.Errors[0].Error(), "line 2:") {
		t.Errorf("unexpected first error: %v", res.Errors[0])
	}
	if !errors.Is(res.Errors[1], translator.ErrEmpty) || !strings.HasPrefix(res.Errors[1].Error(), "#3:") {
		t.Errorf("unexpected second error: %v", res.Errors[1])
	}
}

func TestRunner_Execute_Resolve(t *testing.T) {
	det := detector.New()
	r := New(Config{
		Workers: 1,
		Resolve: func(req internal.TranslationRequest) internal.Mode {
			return det.DetectOr(req.Text, req.Mode)
		},
	})

	reqs := []internal.TranslationRequest{
		{Text: "IX,IV"},
		{Text: "hello"},
	}
	res, err := r.Execute(context.Background(), reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Results[0].Output != "ID" {
		t.Errorf("expected ID, got %q", res.Results[0].Output)
	}
	if res.Results[1].Output != "VIII,V,XII,XII,XV" {
		t.Errorf("expected numerals, got %q", res.Results[1].Output)
	}
}

func TestRunner_Execute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reqs := []internal.TranslationRequest{{Text: "I"}}
	if _, err := New(Config{}).Execute(ctx, reqs); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunner_Execute_Empty(t *testing.T) {
	res, err := New(Config{}).Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded != 0 || res.Failed != 0 || len(res.Results) != 0 {
		t.Errorf("unexpected result: %+v", res)
	}
}
