// Package sanitize очищает пользовательский текст каталога от опасной разметки.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// maxTextPasses ограничивает число проходов очистки в Text.
const maxTextPasses = 4

// Text убирает всю разметку из однострочного поля (имя, заголовок).
// Результат: обычный текст без HTML-сущностей, пробелы по краям обрезаны.
// Очистка повторяется, пока раскодированный результат не перестанет меняться,
// поэтому разметка, спрятанная в сущностях (&lt;img&gt;), тоже удаляется.
func Text(s string) string {
	for range maxTextPasses {
		clean := html.UnescapeString(strict.Sanitize(s))
		if clean == s {
			return strings.TrimSpace(clean)
		}
		s = clean
	}
	return strings.TrimSpace(strict.Sanitize(s))
}

// TextPtr: Text для необязательного поля. nil остаётся nil.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	return &v
}

// HTML оставляет безопасную разметку в описаниях и удаляет скрипты и обработчики событий.
func HTML(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}

// HTMLPtr: HTML для необязательного поля.
func HTMLPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := HTML(*s)
	return &v
}
