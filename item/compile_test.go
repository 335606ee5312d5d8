package item_test

import (
	"testing"

	"github.com/jdziat/typestate/internal/compiletest"
)

func TestBuild_RequiresEveryField(t *testing.T) {
	compiletest.Run(t, ".", []compiletest.Case{
		{
			Name:    "complete builder",
			Src:     "package item\n\nvar _ = Build(New().A(\"x\").B(nil))\n",
			Compile: true,
		},
		{
			Name:    "overwritten complete builder",
			Src:     "package item\n\nvar _ = Build(New().B(nil).A(\"x\").A(\"y\"))\n",
			Compile: true,
		},
		{
			Name: "nothing set",
			Src:  "package item\n\nvar _ = Build(New())\n",
			Want: "Build",
		},
		{
			Name: "b missing",
			Src:  "package item\n\nvar _ = Build(New().A(\"x\"))\n",
			Want: "Build",
		},
		{
			Name: "a missing",
			Src:  "package item\n\nvar _ = Build(New().B(nil))\n",
			Want: "Build",
		},
		{
			Name: "foreign tag",
			Src:  "package item\n\nvar _ ItemBuilder[string, int]\n",
			Want: "does not satisfy",
		},
		{
			Name: "generic builder second missing",
			Src: "package item\n\nimport \"github.com/jdziat/typestate\"\n\n" +
				"var _ = typestate.Build2(typestate.New2(func(a string, b int) Item { return Item{A: a} }).First(\"x\"))\n",
			Want: "Builder2",
		},
		{
			Name: "generic builder three fields, one missing",
			Src: "package item\n\nimport \"github.com/jdziat/typestate\"\n\n" +
				"var _ = typestate.Build3(typestate.New3(func(a, b, c int) int { return a + b + c }).First(1).Third(3))\n",
			Want: "Builder3",
		},
		{
			Name: "generic builder complete",
			Src: "package item\n\nimport \"github.com/jdziat/typestate\"\n\n" +
				"var _ = typestate.Build3(typestate.New3(func(a, b, c int) int { return a + b + c }).Third(3).First(1).Second(2))\n",
			Compile: true,
		},
	})
}
