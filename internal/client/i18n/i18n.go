// Package i18n loads the embedded locale catalogs and resolves user-facing
// messages in the active language. The active locale also supplies the
// Accept-Language value for outgoing requests.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// supported lists the locale catalogs shipped with the client.
// English comes first and acts as the fallback.
var supported = []language.Tag{
	language.English,
	language.Russian,
	language.Ukrainian,
}

type Translator struct {
	catalogs map[string]map[string]string
	matcher  language.Matcher
	locale   string
}

// New loads all embedded catalogs. The initial locale is English.
func New() (*Translator, error) {
	t := &Translator{
		catalogs: make(map[string]map[string]string, len(supported)),
		matcher:  language.NewMatcher(supported),
		locale:   "en",
	}

	for _, tag := range supported {
		name := tag.String()
		data, err := localeFS.ReadFile("locales/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", name, err)
		}
		catalog := map[string]string{}
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", name, err)
		}
		t.catalogs[name] = catalog
	}

	return t, nil
}

// SetLocale switches the active locale to the closest supported match of
// lang (a BCP-47 string, e.g. "ru" or "uk-UA"). Unknown values fall back to
// English.
func (t *Translator) SetLocale(lang string) {
	if lang == "" {
		t.locale = "en"
		return
	}
	_, i := language.MatchStrings(t.matcher, lang)
	t.locale = supported[i].String()
}

// Locale returns the active locale code, e.g. "en".
func (t *Translator) Locale() string {
	return t.locale
}

// T resolves key in the active catalog, falling back to English and then to
// the key itself. Optional args are placeholder name/value pairs replacing
// {{name}} markers in the message.
func (t *Translator) T(key string, args ...string) string {
	msg, ok := t.catalogs[t.locale][key]
	if !ok {
		msg, ok = t.catalogs["en"][key]
	}
	if !ok {
		msg = key
	}

	if len(args) >= 2 {
		pairs := make([]string, 0, len(args))
		for i := 0; i+1 < len(args); i += 2 {
			pairs = append(pairs, "{{"+args[i]+"}}", args[i+1])
		}
		msg = strings.NewReplacer(pairs...).Replace(msg)
	}
	return msg
}
