package staged_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/jdziat/typestate"
	"github.com/jdziat/typestate/internal/compiletest"
	"github.com/jdziat/typestate/item"
	"github.com/jdziat/typestate/staged"
	"github.com/jdziat/typestate/typestatetest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBuild_AnyOrder(t *testing.T) {
	want := item.Item{A: "x", B: []int{1, 2}}

	paths := map[string]item.Item{
		"a then b": staged.New().A("x").B([]int{1, 2}).Build(),
		"b then a": staged.New().B([]int{1, 2}).A("x").Build(),
	}
	for name, got := range paths {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: Build() mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestBuild_MatchesItemBuilder(t *testing.T) {
	fromStaged := staged.New().B([]int{7}).A("same").Build()
	fromItem := item.Build(item.New().B([]int{7}).A("same"))

	if diff := cmp.Diff(fromItem, fromStaged); diff != "" {
		t.Errorf("staged and item builders disagree (-item +staged):\n%s", diff)
	}
}

func TestOverwrite(t *testing.T) {
	tests := []struct {
		name  string
		build func(opts ...typestate.Option) item.Item
		want  item.Item
		a, b  int
	}{
		{
			name: "WithA.A",
			build: func(opts ...typestate.Option) item.Item {
				return staged.New(opts...).A("old").A("new").B(nil).Build()
			},
			want: item.Item{A: "new"},
			a:    1,
		},
		{
			name: "WithB.B",
			build: func(opts ...typestate.Option) item.Item {
				return staged.New(opts...).B([]int{1}).B([]int{2}).A("a").Build()
			},
			want: item.Item{A: "a", B: []int{2}},
			b:    1,
		},
		{
			name: "Complete.A and Complete.B",
			build: func(opts ...typestate.Option) item.Item {
				return staged.New(opts...).A("a").B([]int{1}).A("a2").B([]int{2}).Build()
			},
			want: item.Item{A: "a2", B: []int{2}},
			a:    1,
			b:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := typestatetest.NewTracker()
			got := tt.build(typestate.WithReleaseHook(tr.Hook()))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}
			if n := tr.FieldReleases("a"); n != tt.a {
				t.Errorf("FieldReleases(a) = %d, want %d", n, tt.a)
			}
			if n := tr.FieldReleases("b"); n != tt.b {
				t.Errorf("FieldReleases(b) = %d, want %d", n, tt.b)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	tests := []struct {
		name string
		run  func(opts ...typestate.Option)
		a, b int
	}{
		{"Empty", func(opts ...typestate.Option) { staged.New(opts...).Discard() }, 0, 0},
		{"WithA", func(opts ...typestate.Option) { staged.New(opts...).A("x").Discard() }, 1, 0},
		{"WithB", func(opts ...typestate.Option) { staged.New(opts...).B(nil).Discard() }, 0, 1},
		{"Complete", func(opts ...typestate.Option) { staged.New(opts...).B(nil).A("x").Discard() }, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := typestatetest.NewTracker()
			tt.run(typestate.WithReleaseHook(tr.Hook()))

			if n := tr.FieldReleases("a"); n != tt.a {
				t.Errorf("FieldReleases(a) = %d, want %d", n, tt.a)
			}
			if n := tr.FieldReleases("b"); n != tt.b {
				t.Errorf("FieldReleases(b) = %d, want %d", n, tt.b)
			}
		})
	}
}

func TestBuild_IndependentBuildersConcurrently(t *testing.T) {
	const workers = 8
	got := make([]item.Item, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = staged.New().A(fmt.Sprint(i)).B([]int{i}).Build()
		}(i)
	}
	wg.Wait()

	for i := range got {
		want := item.Item{A: fmt.Sprint(i), B: []int{i}}
		if diff := cmp.Diff(want, got[i]); diff != "" {
			t.Errorf("builder %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestBuild_OnlyOnComplete(t *testing.T) {
	compiletest.Run(t, ".", []compiletest.Case{
		{
			Name:    "complete",
			Src:     "package staged\n\nvar _ = New().B(nil).A(\"x\").Build()\n",
			Compile: true,
		},
		{
			Name: "empty",
			Src:  "package staged\n\nvar _ = New().Build()\n",
			Want: "Build",
		},
		{
			Name: "only a",
			Src:  "package staged\n\nvar _ = New().A(\"x\").A(\"y\").Build()\n",
			Want: "Build",
		},
		{
			Name: "only b",
			Src:  "package staged\n\nvar _ = New().B(nil).Build()\n",
			Want: "Build",
		},
	})
}
