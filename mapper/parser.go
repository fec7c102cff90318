package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samuelgr/xidi/controller"
	"github.com/samuelgr/xidi/keyboard"
	"github.com/samuelgr/xidi/mouse"
)

// MaxRecursionDepth bounds element mapper expression nesting. Measured in
// parameter-list parentheses, so a bare type name has depth 0.
const MaxRecursionDepth = 8

// maxNumericParamLength caps how many characters a numeric parameter may
// occupy, keeping numeric parsing bounded.
const maxNumericParamLength = 8

// ComputeRecursionDepth returns the maximum parenthesis nesting level of an
// element mapper expression without any semantic parsing. The second result
// is false if the parentheses are unbalanced, which is distinct from a valid
// depth of zero.
func ComputeRecursionDepth(s string) (int, bool) {
	depth, maxDepth := 0, 0
	for _, c := range s {
		switch c {
		case '(':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case ')':
			depth--
			if depth < 0 {
				return 0, false
			}
		}
	}
	if depth != 0 {
		return 0, false
	}
	return maxDepth, true
}

// ElementMapperFromString parses one complete element mapper expression.
// The whole input must be consumed; trailing content is an error. On error
// no partial mapper is returned.
func ElementMapperFromString(s string) (ElementMapper, error) {
	depth, balanced := ComputeRecursionDepth(s)
	if !balanced {
		return nil, fmt.Errorf("unbalanced parentheses in %q", s)
	}
	if depth > MaxRecursionDepth {
		return nil, fmt.Errorf("nesting depth %d exceeds the maximum of %d", depth, MaxRecursionDepth)
	}
	return parseElementMapper(s)
}

// mapperFactory builds one mapper kind from its raw parameter list.
// hasParams distinguishes a bare type name from an explicit empty list,
// which is always an error.
type mapperFactory func(params string, hasParams bool) (ElementMapper, error)

// mapperFactories resolves lowercased type names, synonyms included, to
// their constructor. Populated in init because the composite factories
// recurse back into parseElementMapper.
var mapperFactories map[string]mapperFactory

func init() {
	mapperFactories = map[string]mapperFactory{
		"axis":        makeAxisMapper,
		"digitalaxis": makeDigitalAxisMapper,
		"digaxis":     makeDigitalAxisMapper,
		"button":      makeButtonMapper,
		"pov":         makePovMapper,
		"povhat":      makePovMapper,
		"hat":         makePovMapper,
		"keyboard":    makeKeyboardMapper,
		"keystroke":   makeKeyboardMapper,
		"key":         makeKeyboardMapper,
		"kb":          makeKeyboardMapper,
		"mouseaxis":   makeMouseAxisMapper,
		"mousebutton": makeMouseButtonMapper,
		"mousebtn":    makeMouseButtonMapper,
		"invert":      makeInvertMapper,
		"inverted":    makeInvertMapper,
		"split":       makeSplitMapper,
		"compound":    makeCompoundMapper,
		"multi":       makeCompoundMapper,
		"null":        makeNullMapper,
		"nothing":     makeNullMapper,
		"none":        makeNullMapper,
		"empty":       makeNullMapper,
		"blank":       makeNullMapper,
		"unmapped":    makeNullMapper,
	}
}

func parseElementMapper(s string) (ElementMapper, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty element mapper string")
	}

	typeName, params, hasParams, rest, err := splitTypeAndParams(s)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("extraneous trailing content %q", strings.TrimSpace(rest))
	}

	factory, ok := mapperFactories[strings.ToLower(typeName)]
	if !ok {
		return nil, fmt.Errorf("unrecognized element mapper type %q", typeName)
	}
	if hasParams && strings.TrimSpace(params) == "" {
		return nil, fmt.Errorf("%s: empty parameter list", typeName)
	}
	return factory(params, hasParams)
}

// splitTypeAndParams consumes a leading type name and, if present, its
// balanced parameter list, returning whatever input follows the expression.
func splitTypeAndParams(s string) (typeName, params string, hasParams bool, rest string, err error) {
	i := 0
	for i < len(s) && s[i] != '(' && s[i] != ',' && s[i] != ')' {
		i++
	}
	typeName = strings.TrimSpace(s[:i])
	if typeName == "" {
		return "", "", false, "", fmt.Errorf("missing element mapper type name in %q", s)
	}
	if i >= len(s) || s[i] != '(' {
		return typeName, "", false, s[i:], nil
	}

	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return typeName, s[i+1 : j], true, s[j+1:], nil
			}
		}
	}
	return "", "", false, "", fmt.Errorf("unbalanced parentheses in %q", s)
}

// splitParams breaks a parameter list at top-level commas. Empty parameters,
// dangling commas included, are errors.
func splitParams(params string) ([]string, error) {
	var parts []string
	depth, start := 0, 0
	for i := 0; i <= len(params); i++ {
		if i < len(params) {
			switch params[i] {
			case '(':
				depth++
				continue
			case ')':
				depth--
				continue
			}
			if params[i] != ',' || depth != 0 {
				continue
			}
		}
		part := strings.TrimSpace(params[start:i])
		if part == "" {
			return nil, fmt.Errorf("empty parameter at position %d", len(parts)+1)
		}
		parts = append(parts, part)
		start = i + 1
	}
	return parts, nil
}

// requireParamCount validates the parameter count of a non-composite mapper
// type.
func requireParamCount(typeName string, parts []string, minCount, maxCount int) error {
	if len(parts) < minCount || len(parts) > maxCount {
		if minCount == maxCount {
			return fmt.Errorf("%s: expected %d parameter(s), got %d", typeName, minCount, len(parts))
		}
		return fmt.Errorf("%s: expected between %d and %d parameters, got %d", typeName, minCount, maxCount, len(parts))
	}
	return nil
}

func makeAxisMapper(params string, hasParams bool) (ElementMapper, error) {
	axis, direction, err := parseAxisParams("Axis", params, hasParams)
	if err != nil {
		return nil, err
	}
	return NewAxisMapper(axis, direction), nil
}

func makeDigitalAxisMapper(params string, hasParams bool) (ElementMapper, error) {
	axis, direction, err := parseAxisParams("DigitalAxis", params, hasParams)
	if err != nil {
		return nil, err
	}
	return NewDigitalAxisMapper(axis, direction), nil
}

func parseAxisParams(typeName, params string, hasParams bool) (controller.Axis, controller.AxisDirection, error) {
	if !hasParams {
		return 0, 0, fmt.Errorf("%s: missing parameter list", typeName)
	}
	parts, err := splitParams(params)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %v", typeName, err)
	}
	if err := requireParamCount(typeName, parts, 1, 2); err != nil {
		return 0, 0, err
	}

	axis, ok := axisByName(parts[0])
	if !ok {
		return 0, 0, fmt.Errorf("%s: Parameter %q must name an axis", typeName, parts[0])
	}

	direction := controller.AxisDirectionBoth
	if len(parts) == 2 {
		direction, ok = axisDirectionByName(parts[1])
		if !ok {
			return 0, 0, fmt.Errorf("%s: Parameter %q must be an axis direction", typeName, parts[1])
		}
	}
	return axis, direction, nil
}

func makeButtonMapper(params string, hasParams bool) (ElementMapper, error) {
	if !hasParams {
		return nil, fmt.Errorf("Button: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return nil, fmt.Errorf("Button: %v", err)
	}
	if err := requireParamCount("Button", parts, 1, 1); err != nil {
		return nil, err
	}

	n, err := parseUnsignedParam(parts[0])
	if err != nil || n < 1 || n > uint64(controller.ButtonCount) {
		return nil, fmt.Errorf("Button: Parameter %q must be a number between 1 and %d", parts[0], controller.ButtonCount)
	}
	return NewButtonMapper(controller.Button(n - 1)), nil
}

func makePovMapper(params string, hasParams bool) (ElementMapper, error) {
	if !hasParams {
		return nil, fmt.Errorf("Pov: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return nil, fmt.Errorf("Pov: %v", err)
	}
	if err := requireParamCount("Pov", parts, 1, 1); err != nil {
		return nil, err
	}

	direction, ok := povDirectionByName(parts[0])
	if !ok {
		return nil, fmt.Errorf("Pov: Parameter %q must be a POV direction", parts[0])
	}
	return NewPovMapper(direction), nil
}

func makeKeyboardMapper(params string, hasParams bool) (ElementMapper, error) {
	if !hasParams {
		return nil, fmt.Errorf("Keyboard: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return nil, fmt.Errorf("Keyboard: %v", err)
	}
	if err := requireParamCount("Keyboard", parts, 1, 1); err != nil {
		return nil, err
	}

	// Symbolic names take precedence over raw numeric scan codes.
	if key, ok := keyboard.KeyByName(parts[0]); ok {
		return NewKeyboardMapper(key), nil
	}
	if n, err := parseUnsignedParam(parts[0]); err == nil && n < uint64(keyboard.KeyCount) {
		return NewKeyboardMapper(keyboard.Key(n)), nil
	}
	return nil, fmt.Errorf("Keyboard: Parameter %q must be a keyboard scan code", parts[0])
}

func makeMouseAxisMapper(params string, hasParams bool) (ElementMapper, error) {
	if !hasParams {
		return nil, fmt.Errorf("MouseAxis: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return nil, fmt.Errorf("MouseAxis: %v", err)
	}
	if err := requireParamCount("MouseAxis", parts, 1, 2); err != nil {
		return nil, err
	}

	axis, ok := mouse.AxisByName(parts[0])
	if !ok {
		return nil, fmt.Errorf("MouseAxis: Parameter %q must name a mouse axis", parts[0])
	}

	direction := controller.AxisDirectionBoth
	if len(parts) == 2 {
		direction, ok = axisDirectionByName(parts[1])
		if !ok {
			return nil, fmt.Errorf("MouseAxis: Parameter %q must be an axis direction", parts[1])
		}
	}
	return NewMouseAxisMapper(axis, direction), nil
}

func makeMouseButtonMapper(params string, hasParams bool) (ElementMapper, error) {
	if !hasParams {
		return nil, fmt.Errorf("MouseButton: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return nil, fmt.Errorf("MouseButton: %v", err)
	}
	if err := requireParamCount("MouseButton", parts, 1, 1); err != nil {
		return nil, err
	}

	button, ok := mouse.ButtonByName(parts[0])
	if !ok {
		return nil, fmt.Errorf("MouseButton: Parameter %q must name a mouse button", parts[0])
	}
	return NewMouseButtonMapper(button), nil
}

func makeInvertMapper(params string, hasParams bool) (ElementMapper, error) {
	if !hasParams {
		return nil, fmt.Errorf("Invert: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return nil, fmt.Errorf("Invert: %v", err)
	}
	if err := requireParamCount("Invert", parts, 1, 1); err != nil {
		return nil, err
	}

	child, err := parseElementMapper(parts[0])
	if err != nil {
		return nil, fmt.Errorf("Invert: Parameter 1: %v", err)
	}
	return NewInvertMapper(child), nil
}

func makeSplitMapper(params string, hasParams bool) (ElementMapper, error) {
	if !hasParams {
		return nil, fmt.Errorf("Split: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return nil, fmt.Errorf("Split: %v", err)
	}
	if err := requireParamCount("Split", parts, 2, 2); err != nil {
		return nil, err
	}

	positive, err := parseElementMapper(parts[0])
	if err != nil {
		return nil, fmt.Errorf("Split: Parameter 1: %v", err)
	}
	negative, err := parseElementMapper(parts[1])
	if err != nil {
		return nil, fmt.Errorf("Split: Parameter 2: %v", err)
	}
	return NewSplitMapper(positive, negative), nil
}

func makeCompoundMapper(params string, hasParams bool) (ElementMapper, error) {
	if !hasParams {
		return nil, fmt.Errorf("Compound: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return nil, fmt.Errorf("Compound: %v", err)
	}
	if len(parts) < 1 || len(parts) > MaxCompoundChildren {
		return nil, fmt.Errorf("Compound: expected between 1 and %d parameters, got %d", MaxCompoundChildren, len(parts))
	}

	children := make([]ElementMapper, 0, len(parts))
	for i, part := range parts {
		child, err := parseElementMapper(part)
		if err != nil {
			return nil, fmt.Errorf("Compound: Parameter %d: %v", i+1, err)
		}
		children = append(children, child)
	}
	return NewCompoundMapper(children...), nil
}

func makeNullMapper(params string, hasParams bool) (ElementMapper, error) {
	if hasParams {
		return nil, fmt.Errorf("Null: unexpected parameter list")
	}
	return NewNullMapper(), nil
}

// parseUnsignedParam parses a bounded-length numeric parameter in decimal,
// octal (leading 0), or hex (0x prefix) notation.
func parseUnsignedParam(s string) (uint64, error) {
	if len(s) > maxNumericParamLength {
		return 0, fmt.Errorf("numeric parameter %q is too long", s)
	}
	return strconv.ParseUint(s, 0, 32)
}

var axisNames = map[string]controller.Axis{
	"x":         controller.AxisX,
	"y":         controller.AxisY,
	"z":         controller.AxisZ,
	"rotx":      controller.AxisRotX,
	"roty":      controller.AxisRotY,
	"rotz":      controller.AxisRotZ,
	"rx":        controller.AxisRotX,
	"ry":        controller.AxisRotY,
	"rz":        controller.AxisRotZ,
	"rotationx": controller.AxisRotX,
	"rotationy": controller.AxisRotY,
	"rotationz": controller.AxisRotZ,
}

func axisByName(s string) (controller.Axis, bool) {
	a, ok := axisNames[strings.ToLower(s)]
	return a, ok
}

var axisDirectionNames = map[string]controller.AxisDirection{
	"both":     controller.AxisDirectionBoth,
	"~":        controller.AxisDirectionBoth,
	"+":        controller.AxisDirectionPositive,
	"plus":     controller.AxisDirectionPositive,
	"positive": controller.AxisDirectionPositive,
	"pos":      controller.AxisDirectionPositive,
	"-":        controller.AxisDirectionNegative,
	"minus":    controller.AxisDirectionNegative,
	"negative": controller.AxisDirectionNegative,
	"neg":      controller.AxisDirectionNegative,
}

func axisDirectionByName(s string) (controller.AxisDirection, bool) {
	d, ok := axisDirectionNames[strings.ToLower(s)]
	return d, ok
}

var povDirectionNames = map[string]controller.PovDirection{
	"up":      controller.PovUp,
	"u":       controller.PovUp,
	"top":     controller.PovUp,
	"down":    controller.PovDown,
	"d":       controller.PovDown,
	"bottom":  controller.PovDown,
	"left":    controller.PovLeft,
	"l":       controller.PovLeft,
	"right":   controller.PovRight,
	"r":       controller.PovRight,
	"forward": controller.PovUp,
	"back":    controller.PovDown,
}

func povDirectionByName(s string) (controller.PovDirection, bool) {
	d, ok := povDirectionNames[strings.ToLower(s)]
	return d, ok
}
