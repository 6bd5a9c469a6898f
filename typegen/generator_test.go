package typegen_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/sarayourfriend/openapi-type/typegen"
)

func TestGenerator_IdenticalConfigSharesCore(t *testing.T) {
	g1 := mustNew[pet](t)
	g2 := mustNew[pet](t)
	if g1.Root() != g2.Root() {
		t.Fatalf("identical configurations must share one descriptor tree")
	}
}

func TestGenerator_DistinctConfigsStayIsolated(t *testing.T) {
	plain := mustNew[pet](t)
	strict := mustNew[pet](t, typegen.WithUnknownPolicy(typegen.UnknownStrict))
	if plain.Root() == strict.Root() {
		t.Fatalf("distinct configurations must not share a descriptor tree")
	}

	renamed := mustNew[pet](t, typegen.WithOverride(pet{}, "Name", "petName"))
	node := map[string]any{"name": "rex"}
	if _, err := plain.Decode(node); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var mfe *typegen.MissingFieldError
	if _, err := renamed.Decode(node); !errors.As(err, &mfe) {
		t.Fatalf("override table leaked between generators: %v", err)
	}
}

func TestGenerator_VariantOrderPartOfIdentity(t *testing.T) {
	g1 := mustNew[shapeHolder](t, shapeVariants())
	g2 := mustNew[shapeHolder](t,
		typegen.WithVariants((*shape)(nil), docShape{}, refShape{}))
	if g1.Root() == g2.Root() {
		t.Fatalf("different attempt orders must not share a descriptor tree")
	}
}

func TestGenerator_ConcurrentDecodeEncode(t *testing.T) {
	g := mustNew[pet](t)
	node := map[string]any{
		"name":    "rex",
		"weight":  12.5,
		"aliases": []any{"buddy"},
	}
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v, err := g.Decode(node)
				if err == nil {
					_, err = g.Encode(v)
				}
				if err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
}

func TestGenerator_RejectsNonPositiveMaxDepth(t *testing.T) {
	if _, err := typegen.New[pet](typegen.WithMaxDepth(0)); err == nil {
		t.Fatalf("expected build error for non-positive depth")
	}
}

func TestMustNew_PanicsOnBuildError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	typegen.MustNew[shapeHolder]() // unregistered sum type
}
