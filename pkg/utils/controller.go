package utils

import (
	"fmt"
	"reflect"
	"strings"
)

const controllerSuffix = "Controller"

// RouteNamer lets a handler declare its route name explicitly instead of
// relying on its type name.
type RouteNamer interface {
	RouteName() string
}

// ControllerName derives a lowercase route name from the concrete type
// name of v by stripping the trailing "Controller" suffix. A type name
// without the suffix is a configuration error, not something to truncate
// silently.
func ControllerName(v any) (string, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return "", fmt.Errorf("controller name: nil value")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	name := t.Name()
	if name == "" {
		return "", fmt.Errorf("controller name: anonymous type %s", t.String())
	}
	if !strings.HasSuffix(name, controllerSuffix) || name == controllerSuffix {
		return "", fmt.Errorf("controller name: type %s does not end in %q", name, controllerSuffix)
	}

	return strings.ToLower(strings.TrimSuffix(name, controllerSuffix)), nil
}

// RouteName resolves the route name for a handler: an explicit RouteName()
// declaration wins, otherwise the name is derived from the type name.
func RouteName(v any) (string, error) {
	if rn, ok := v.(RouteNamer); ok {
		if name := strings.TrimSpace(rn.RouteName()); name != "" {
			return strings.ToLower(name), nil
		}
	}
	return ControllerName(v)
}
