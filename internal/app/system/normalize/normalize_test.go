package normalize

import "testing"

func TestGradeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5º Ano", "5° ano"},
		{"5o ano", "5° ano"},
		{"5° ANO", "5° ano"},
		{"  5 º  Ano ", "5° ano"},
		{"1º ano", "1° ano"},
		{"Educação Infantil", "educação infantil"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := GradeKey(tt.input)
			if got != tt.want {
				t.Errorf("GradeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGradeKeyEquivalence(t *testing.T) {
	variants := []string{"5o ano", "5º Ano", "5° ANO"}
	base := GradeKey(variants[0])
	for _, v := range variants[1:] {
		if GradeKey(v) != base {
			t.Errorf("GradeKey(%q) = %q, want %q", v, GradeKey(v), base)
		}
	}
}

func TestComponent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MAT", "Matemática"},
		{"mat", "Matemática"},
		{"  LP ", "Língua Portuguesa"},
		{"Matemática", "Matemática"},
		{"Língua Portuguesa", "Língua Portuguesa"}, // already expanded, passes through
		{"XYZ", "XYZ"},                             // unknown abbreviation falls back
		{"ED FISICA", "ED FISICA"},                 // ambiguous all-caps multi-word: never guessed
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Component(tt.input)
			if got != tt.want {
				t.Errorf("Component(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"EI", "Educação Infantil"},
		{"AI", "Anos Iniciais"},
		{"AF", "Anos Finais"},
		{"EM", "Ensino Médio"},
		{"Anos Finais", "Anos Finais"},
	}

	for _, tt := range tests {
		if got := Segment(tt.input); got != tt.want {
			t.Errorf("Segment(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBrand(t *testing.T) {
	if got := Brand("SPE"); got != "Sistema Positivo" {
		t.Errorf("Brand(SPE) = %q, want %q", got, "Sistema Positivo")
	}
	if got := Brand("Sistema Positivo"); got != "Sistema Positivo" {
		t.Errorf("Brand passthrough = %q", got)
	}
}

func TestSegmentRank(t *testing.T) {
	ei, ok := SegmentRank("Educação Infantil")
	if !ok {
		t.Fatal("Educação Infantil should be in the pedagogical sequence")
	}
	af, _ := SegmentRank("Anos Finais")
	if ei >= af {
		t.Errorf("Educação Infantil (%d) should rank before Anos Finais (%d)", ei, af)
	}
	if _, ok := SegmentRank("Curso Livre"); ok {
		t.Error("unknown segment should not be in the fixed sequence")
	}
}
