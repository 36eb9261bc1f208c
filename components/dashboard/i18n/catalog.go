package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLanguage is the language every other catalog must match key for key.
const BaseLanguage = Portuguese

var (
	// ErrNoCatalogs is returned when a filesystem contains no locale files.
	ErrNoCatalogs = errors.New("i18n: no catalog files found")
	// ErrUnsupportedLocale is returned for catalog directories outside the supported set.
	ErrUnsupportedLocale = errors.New("i18n: unsupported locale")
)

//go:embed locales/*/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Dictionary stores the flat key -> string tables for each language.
type Dictionary struct {
	tables     map[Language]map[string]string
	namespaces map[Language]map[string][]string
	builder    *catalog.Builder
}

// MissingKey reports a key present in one language but absent from another.
type MissingKey struct {
	Language Language
	Key      string
}

func (m MissingKey) String() string {
	return fmt.Sprintf("%s: %s", m.Language, m.Key)
}

// Load reads the embedded locale catalogs.
func Load() (*Dictionary, error) {
	return LoadFS(embeddedLocales)
}

// MustLoad panics when the embedded catalogs are malformed.
func MustLoad() *Dictionary {
	dict, err := Load()
	if err != nil {
		panic(err)
	}
	return dict
}

// LoadFS reads `locales/<tag>/<namespace>.yaml` files from the provided filesystem.
func LoadFS(fsys fs.FS) (*Dictionary, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoCatalogs
	}
	sort.Strings(paths)

	dict := &Dictionary{
		tables:     map[Language]map[string]string{},
		namespaces: map[Language]map[string][]string{},
		builder:    catalog.NewBuilder(catalog.Fallback(BaseLanguage.Tag())),
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("i18n: read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("i18n: parse catalog %s: %w", p, err)
		}
		if err := dict.addFile(p, file); err != nil {
			return nil, err
		}
	}
	if _, ok := dict.tables[BaseLanguage]; !ok {
		return nil, fmt.Errorf("i18n: base locale %s is not defined", BaseLanguage.Locale())
	}
	return dict, nil
}

func (d *Dictionary) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale != localeFromPath {
		return fmt.Errorf("i18n: catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	lang, ok := ParseLanguage(locale)
	if !ok || lang.Locale() != locale {
		return fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != namespaceFromPath {
		return fmt.Errorf("i18n: catalog %s: namespace %q must match filename %q", p, namespace, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("i18n: catalog %s: messages are required", p)
	}

	table, ok := d.tables[lang]
	if !ok {
		table = map[string]string{}
		d.tables[lang] = table
		d.namespaces[lang] = map[string][]string{}
	}
	if _, exists := d.namespaces[lang][namespace]; exists {
		return fmt.Errorf("i18n: catalog %s: namespace %q already defined for %s", p, namespace, locale)
	}

	keys := make([]string, 0, len(file.Messages))
	for rawKey, value := range file.Messages {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			return fmt.Errorf("i18n: catalog %s: blank message key", p)
		}
		if _, exists := table[key]; exists {
			return fmt.Errorf("i18n: catalog %s: duplicate key %q in %s", p, key, locale)
		}
		table[key] = value
		if err := d.builder.SetString(lang.Tag(), key, value); err != nil {
			return fmt.Errorf("i18n: register %s/%s: %w", locale, key, err)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	d.namespaces[lang][namespace] = keys
	return nil
}

// Table returns a copy of the key -> string mapping for the language.
func (d *Dictionary) Table(lang Language) map[string]string {
	if d == nil {
		return map[string]string{}
	}
	src := d.tables[lang]
	if src == nil {
		src = d.tables[BaseLanguage]
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

// Translate looks up a key, falling back to the base language and then to the key itself.
func (d *Dictionary) Translate(lang Language, key string) string {
	if d == nil {
		return key
	}
	if value, ok := d.tables[lang][key]; ok {
		return value
	}
	if value, ok := d.tables[BaseLanguage][key]; ok {
		return value
	}
	return key
}

// Namespaces lists the namespaces loaded for a language.
func (d *Dictionary) Namespaces(lang Language) []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.namespaces[lang]))
	for ns := range d.namespaces[lang] {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Printer returns a locale-aware printer backed by the loaded catalogs.
func (d *Dictionary) Printer(lang Language) *message.Printer {
	if d == nil || d.builder == nil {
		return message.NewPrinter(lang.Tag())
	}
	return message.NewPrinter(lang.Tag(), message.Catalog(d.builder))
}

// Format renders a printf-style message such as "Page %[1]d of %[2]d" with the
// language's number grouping. Unknown keys fall back to the base language.
func (d *Dictionary) Format(lang Language, key string, args ...any) string {
	return d.Printer(lang).Sprintf(key, args...)
}

// MissingKeys reports keys that exist in one language but not in another.
func (d *Dictionary) MissingKeys() []MissingKey {
	if d == nil {
		return nil
	}
	var missing []MissingKey
	for _, lang := range Languages() {
		for _, other := range Languages() {
			if lang == other {
				continue
			}
			for key := range d.tables[other] {
				if _, ok := d.tables[lang][key]; !ok {
					missing = append(missing, MissingKey{Language: lang, Key: key})
				}
			}
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Language != missing[j].Language {
			return missing[i].Language < missing[j].Language
		}
		return missing[i].Key < missing[j].Key
	})
	return missing
}
