package catalog

import (
	"errors"
	"testing"

	"github.com/ocastel/tooldex/internal/apperr"
	"github.com/ocastel/tooldex/internal/models"
)

func toolList(n int) []models.Tool {
	out := make([]models.Tool, n)
	for i := range out {
		out[i] = models.Tool{Name: string(rune('A' + i))}
	}
	return out
}

func TestPaginateBasic(t *testing.T) {
	p, err := Paginate(toolList(5), 1, 2)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(p.Items) != 2 || p.Total != 5 || p.TotalPages != 3 || p.Page != 1 || p.PageSize != 2 {
		t.Errorf("page = %+v", p)
	}
	if p.Items[0].Name != "A" || p.Items[1].Name != "B" {
		t.Errorf("items = %v", p.Items)
	}
}

func TestPaginateFinalPage(t *testing.T) {
	p, err := Paginate(toolList(5), 3, 2)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(p.Items) != 1 || p.Items[0].Name != "E" {
		t.Errorf("final page items = %v", p.Items)
	}

	// Evenly divisible: final page is full.
	p, _ = Paginate(toolList(6), 3, 2)
	if len(p.Items) != 2 || p.TotalPages != 3 {
		t.Errorf("even final page = %+v", p)
	}
}

func TestPaginateBeyondEnd(t *testing.T) {
	p, err := Paginate(toolList(5), 9, 2)
	if err != nil {
		t.Fatalf("page beyond end must not error: %v", err)
	}
	if p.Items == nil || len(p.Items) != 0 {
		t.Errorf("items = %v, want empty", p.Items)
	}
	if p.Total != 5 || p.TotalPages != 3 {
		t.Errorf("metadata = %+v", p)
	}
}

func TestPaginateEmptyList(t *testing.T) {
	p, err := Paginate(nil, 1, 20)
	if err != nil {
		t.Fatalf("Paginate(empty): %v", err)
	}
	if p.Items == nil || len(p.Items) != 0 || p.Total != 0 || p.TotalPages != 0 {
		t.Errorf("empty page = %+v", p)
	}
}

func TestPaginateInvalidInput(t *testing.T) {
	if _, err := Paginate(toolList(3), 1, 0); !errors.Is(err, apperr.ErrInvalidPage) {
		t.Errorf("pageSize 0: err = %v", err)
	}
	if _, err := Paginate(toolList(3), 1, -5); !errors.Is(err, apperr.ErrInvalidPage) {
		t.Errorf("pageSize -5: err = %v", err)
	}
	if _, err := Paginate(toolList(3), 0, 10); !errors.Is(err, apperr.ErrInvalidPage) {
		t.Errorf("page 0: err = %v", err)
	}
	if _, err := Paginate(toolList(3), -1, 10); !errors.Is(err, apperr.ErrInvalidPage) {
		t.Errorf("page -1: err = %v", err)
	}
}

func TestPaginateHugeInputs(t *testing.T) {
	// Offsets are computed from caller input; page and pageSize large
	// enough to overflow a multiplication must still land on the
	// beyond-end contract instead of panicking.
	p, err := Paginate(toolList(3), 1<<62, 20)
	if err != nil {
		t.Fatalf("huge page must not error: %v", err)
	}
	if len(p.Items) != 0 || p.Total != 3 || p.TotalPages != 1 {
		t.Errorf("huge page = %+v", p)
	}

	p, err = Paginate(toolList(3), 1, 1<<62)
	if err != nil {
		t.Fatalf("huge page size must not error: %v", err)
	}
	if len(p.Items) != 3 || p.TotalPages != 1 {
		t.Errorf("huge page size = %+v", p)
	}

	p, err = Paginate(toolList(3), 2, 1<<62)
	if err != nil || len(p.Items) != 0 {
		t.Errorf("page 2 of one huge page = %+v, err = %v", p, err)
	}
}

func TestPaginateDoesNotReorder(t *testing.T) {
	tools := toolList(4)
	p, _ := Paginate(tools, 2, 2)
	if p.Items[0].Name != "C" || p.Items[1].Name != "D" {
		t.Errorf("page 2 items = %v", p.Items)
	}
}
