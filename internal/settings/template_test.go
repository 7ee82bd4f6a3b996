package settings

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	vars := map[string]string{
		"name": "João",
		"code": "MB-ABC123",
	}

	t.Run("substitutes tokens", func(t *testing.T) {
		got := Render("Olá {{name}}, seu cupom é {{code}}.", vars)
		want := "Olá João, seu cupom é MB-ABC123."
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := Render("{{Name}} {{NAME}} {{nAmE}}", vars)
		if got != "João João João" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("whitespace inside braces", func(t *testing.T) {
		got := Render("{{ name }} e {{  code  }}", vars)
		if got != "João e MB-ABC123" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("unknown token untouched", func(t *testing.T) {
		got := Render("{{name}} {{saldo}}", vars)
		if got != "João {{saldo}}" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("empty value renders empty", func(t *testing.T) {
		got := Render("[{{vazio}}]", map[string]string{"vazio": ""})
		if got != "[]" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestHTMLBody(t *testing.T) {
	t.Run("paragraphs and line breaks", func(t *testing.T) {
		got := HTMLBody("Linha um\nLinha dois\n\nSegundo parágrafo")
		if !strings.Contains(got, "<p>Linha um<br>Linha dois</p>") {
			t.Fatalf("missing first paragraph: %q", got)
		}
		if !strings.Contains(got, "<p>Segundo parágrafo</p>") {
			t.Fatalf("missing second paragraph: %q", got)
		}
	})

	t.Run("escapes html", func(t *testing.T) {
		got := HTMLBody("10% < 20% & \"grátis\"")
		if strings.Contains(got, "\"grátis\"") || !strings.Contains(got, "&lt;") {
			t.Fatalf("unescaped content: %q", got)
		}
	})

	t.Run("default body renders every token", func(t *testing.T) {
		rendered := Render(DefaultBirthdayBody, map[string]string{
			"name":      "João",
			"code":      "MB-ABC123",
			"percent":   "10",
			"expiresat": "29/09/2026",
		})
		if strings.Contains(rendered, "{{") {
			t.Fatalf("default template has an unresolved token: %q", rendered)
		}
		got := HTMLBody(rendered)
		if !strings.Contains(got, "MB-ABC123") {
			t.Fatalf("code missing from html body: %q", got)
		}
	})
}
