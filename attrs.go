package elemental

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Attrs is the attribute bag applied to a new element.
//
// The keys "id", "class", "style" and "dataSet" are handled specially, as
// are values of type Listener. A nil value is ignored. A boolean false
// removes the attribute.
type Attrs map[string]any

// Styles maps CSS property names to values. Names may be given in CSS form
// ("background-color") or in camel case ("backgroundColor").
type Styles map[string]string

// Dataset maps data attribute suffixes to values: {"user": "4"} becomes
// data-user="4". The suffix is used as is; hosts may lowercase it.
type Dataset map[string]string

// Listeners maps event types ("click", "keydown") to handlers.
type Listeners map[string]Listener

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// applyAttrs mutates el in place. The phases run in a fixed order: id,
// class, listeners, style, dataset, everything else.
func (b *Builder) applyAttrs(el Element, attrs Attrs, on Listeners) error {
	if v, ok := attrs["id"]; ok && v != nil {
		el.SetID(stringValue(v))
	}
	if v, ok := attrs["class"]; ok && v != nil {
		if err := addClasses(el, stringValue(v)); err != nil {
			return fmt.Errorf("class: %w", err)
		}
	}

	// Function values win over the style and dataSet keys.
	var rest []string
	for _, key := range sortedKeys(attrs) {
		switch key {
		case "id", "class":
			continue
		}
		if attrs[key] == nil {
			continue
		}
		if l, ok := listenerValue(attrs[key]); ok {
			if l != nil {
				el.AddEventListener(eventTypeFromKey(key), l)
			}
			continue
		}
		switch key {
		case "style", "dataSet":
			continue
		}
		rest = append(rest, key)
	}
	for _, typ := range sortedKeys(on) {
		if on[typ] == nil {
			continue
		}
		el.AddEventListener(strings.ToLower(typ), on[typ])
	}

	if v, ok := attrs["style"]; ok && v != nil && !isListener(v) {
		if err := applyStyle(el, v); err != nil {
			return err
		}
	}
	if v, ok := attrs["dataSet"]; ok && v != nil && !isListener(v) {
		if err := applyDataset(el, v); err != nil {
			return err
		}
	}

	for _, key := range rest {
		if err := b.applyAttr(el, key, attrs[key]); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// applyAttr handles the boolean and generic cases.
func (b *Builder) applyAttr(el Element, key string, value any) error {
	if flag, ok := value.(bool); ok {
		switch {
		case !flag:
			el.RemoveAttribute(key)
			return nil
		case b.cfg.isExplicitBoolean(key):
			return el.SetAttribute(key, "true")
		default:
			return el.SetAttribute(key, "")
		}
	}
	return el.SetAttribute(key, stringValue(value))
}

// addClasses splits on single spaces, so "a  b" adds a and b.
func addClasses(el Element, classes string) error {
	cl := el.ClassList()
	for _, cls := range strings.Split(classes, " ") {
		if cls == "" {
			continue
		}
		if err := cl.Add(cls); err != nil {
			return err
		}
	}
	return nil
}

func applyStyle(el Element, value any) error {
	var styles map[string]string
	switch v := value.(type) {
	case Styles:
		styles = v
	case map[string]string:
		styles = v
	default:
		return fmt.Errorf("style: unsupported value %T", value)
	}
	st := el.Style()
	for _, name := range sortedKeys(styles) {
		st.SetProperty(cssPropertyName(name), styles[name])
	}
	return nil
}

func applyDataset(el Element, value any) error {
	var data map[string]string
	switch v := value.(type) {
	case Dataset:
		data = v
	case map[string]string:
		data = v
	default:
		return fmt.Errorf("dataSet: unsupported value %T", value)
	}
	for _, key := range sortedKeys(data) {
		if err := el.SetAttribute("data-"+key, data[key]); err != nil {
			return fmt.Errorf("dataSet: %w", err)
		}
	}
	return nil
}

func listenerValue(v any) (Listener, bool) {
	switch l := v.(type) {
	case Listener:
		return l, true
	case func(Event):
		return l, true
	}
	return nil, false
}

func isListener(v any) bool {
	_, ok := listenerValue(v)
	return ok
}

// eventTypeFromKey turns "onClick" into "click". The first two characters
// are dropped whatever they are.
func eventTypeFromKey(key string) string {
	if len(key) < 2 {
		return strings.ToLower(key)
	}
	return strings.ToLower(key[2:])
}

// cssPropertyName converts camel case names to CSS names. Names that
// already contain a dash are returned unchanged. A leading capital marks a
// vendor prefix: WebkitTransform is -webkit-transform.
func cssPropertyName(name string) string {
	if strings.Contains(name, "-") {
		return name
	}
	if name == "cssFloat" {
		return "float"
	}
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func stringValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}
