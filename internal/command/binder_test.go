package command

import (
	"testing"
)

func sayDef() *Definition {
	return &Definition{
		Name:        "say",
		Description: "Say something",
		Params: []ParameterSpec{
			{Name: "message", Description: "Text to say", Required: true, Type: TypeString},
		},
	}
}

func TestBind_SlurpsTrailingTokens(t *testing.T) {
	args, berr := Bind(sayDef(), []string{"a", "b", "c"})
	if berr != nil {
		t.Fatalf("unexpected bind error: %v", berr)
	}
	got, ok := args.String("message")
	if !ok || got != "a b c" {
		t.Errorf("expected message %q, got %q (ok=%v)", "a b c", got, ok)
	}
}

func TestBind_SlurpCollapsesWhitespace(t *testing.T) {
	// Tokenize collapses runs of whitespace before binding.
	args, berr := Bind(sayDef(), Tokenize("say   hello   there")[1:])
	if berr != nil {
		t.Fatalf("unexpected bind error: %v", berr)
	}
	if got, _ := args.String("message"); got != "hello there" {
		t.Errorf("expected %q, got %q", "hello there", got)
	}
}

func TestBind_MissingRequired(t *testing.T) {
	_, berr := Bind(sayDef(), nil)
	if berr == nil {
		t.Fatal("expected a bind error for missing required parameter")
	}
	if berr.Param != "message" || berr.Reason != "is required" {
		t.Errorf("unexpected bind error: %+v", berr)
	}
}

func TestBind_NumberConversion(t *testing.T) {
	def := &Definition{
		Name: "sleep",
		Params: []ParameterSpec{
			{Name: "seconds", Required: true, Type: TypeNumber},
		},
	}

	args, berr := Bind(def, []string{"42"})
	if berr != nil {
		t.Fatalf("unexpected bind error: %v", berr)
	}
	n, ok := args.Number("seconds")
	if !ok || n != 42 {
		t.Errorf("expected 42, got %v (ok=%v)", n, ok)
	}

	_, berr = Bind(def, []string{"xyz"})
	if berr == nil {
		t.Fatal("expected a bind error for non-numeric token")
	}
	if berr.Reason != `expects a number, got "xyz"` {
		t.Errorf("unexpected reason: %q", berr.Reason)
	}
}

func TestBind_ExactKeySet(t *testing.T) {
	def := &Definition{
		Name: "mixed",
		Params: []ParameterSpec{
			{Name: "target", Required: true, Type: TypeString},
			{Name: "count", Type: TypeNumber},
			{Name: "label", Type: TypeString},
		},
	}

	args, berr := Bind(def, []string{"here"})
	if berr != nil {
		t.Fatalf("unexpected bind error: %v", berr)
	}
	if len(args) != 3 {
		t.Fatalf("expected exactly 3 keys, got %d: %v", len(args), args)
	}
	for _, name := range []string{"target", "count", "label"} {
		if _, present := args[name]; !present {
			t.Errorf("expected key %q to be present", name)
		}
	}
	if args.Has("count") || args.Has("label") {
		t.Error("unfilled optionals should map to nil")
	}
	if got, _ := args.String("target"); got != "here" {
		t.Errorf("expected target %q, got %q", "here", got)
	}
}

func TestBind_DefaultsNeverApplied(t *testing.T) {
	def := &Definition{
		Name: "fetch",
		Params: []ParameterSpec{
			{Name: "limit", Type: TypeNumber, Default: "10"},
		},
	}

	args, berr := Bind(def, nil)
	if berr != nil {
		t.Fatalf("unexpected bind error: %v", berr)
	}
	if args.Has("limit") {
		t.Errorf("declared default must not be bound, got %v", args["limit"])
	}
}

func TestBind_MiddleParameterNeverSlurps(t *testing.T) {
	def := &Definition{
		Name: "add",
		Params: []ParameterSpec{
			{Name: "title", Required: true, Type: TypeString},
			{Name: "content", Required: true, Type: TypeString},
		},
	}

	args, berr := Bind(def, []string{"shopping", "buy", "milk", "and", "eggs"})
	if berr != nil {
		t.Fatalf("unexpected bind error: %v", berr)
	}
	if got, _ := args.String("title"); got != "shopping" {
		t.Errorf("expected title %q, got %q", "shopping", got)
	}
	if got, _ := args.String("content"); got != "buy milk and eggs" {
		t.Errorf("expected content %q, got %q", "buy milk and eggs", got)
	}
}

func TestBind_RequiredNumberLastDoesNotSlurp(t *testing.T) {
	def := &Definition{
		Name: "sleep",
		Params: []ParameterSpec{
			{Name: "seconds", Required: true, Type: TypeNumber},
		},
	}
	_, berr := Bind(def, []string{"1", "2"})
	if berr != nil {
		t.Fatalf("unexpected bind error: %v", berr)
	}
	// Extra tokens after a non-slurping final parameter are ignored.
}
