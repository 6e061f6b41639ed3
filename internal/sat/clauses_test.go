package sat

import "testing"

func TestLiteral_Opposite(t *testing.T) {
	l := Pos("a")

	if got := l.Opposite(); got != Neg("a") {
		t.Errorf("Opposite(): want %s, got %s", Neg("a"), got)
	}
	if got := l.Opposite().Opposite(); got != l {
		t.Errorf("Opposite().Opposite(): want %s, got %s", l, got)
	}
}

func TestClause_String(t *testing.T) {
	tests := []struct {
		clause Clause
		want   string
	}{
		{Clause{}, "Clause[]"},
		{Clause{Pos("a")}, "Clause[a]"},
		{Clause{Neg("a"), Pos("b")}, "Clause[!a b]"},
	}
	for _, tt := range tests {
		if got := tt.clause.String(); got != tt.want {
			t.Errorf("String(): want %q, got %q", tt.want, got)
		}
	}
}

func TestModel_Satisfies(t *testing.T) {
	kb := KnowledgeBase{{Pos("a"), Neg("b")}}

	tests := []struct {
		name  string
		model Model
		want  bool
	}{
		{"positive literal true", Model{"a": True, "b": True}, true},
		{"negated literal true", Model{"a": False, "b": False}, true},
		{"free satisfies nothing", Model{"a": Free, "b": True}, false},
		{"no literal true", Model{"a": False, "b": True}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.Satisfies(kb); got != tt.want {
				t.Errorf("Satisfies(): want %v, got %v", tt.want, got)
			}
		})
	}
}
