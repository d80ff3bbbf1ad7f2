package web

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Route names
const (
	RouteIndex           = "index"
	RouteHello           = "hello-endpoint"
	RouteShowName        = "show_name"
	RouteStatic          = "static"
	RouteContact         = "contact"
	RouteContactComplete = "contact_complete"
	RouteCrudIndex       = "crud.index"
	RouteCrudUsersNew    = "crud.users_new"
	RouteCrudUsersCreate = "crud.users_create"
	RouteCrudUsersShow   = "crud.users_show"
	RouteCrudUsersDelete = "crud.users_delete"
)

// NamedRoute is a registered route pattern
type NamedRoute struct {
	Name    string
	Method  string
	Pattern string
}

// URLBuilder resolves route names to URLs. gin has no reverse routing, so every
// named route is recorded here when it is registered.
type URLBuilder struct {
	mu     sync.RWMutex
	routes map[string]NamedRoute
}

// NewURLBuilder creates an empty URLBuilder
func NewURLBuilder() *URLBuilder {
	return &URLBuilder{routes: make(map[string]NamedRoute)}
}

// Register records pattern under name. Registering a name twice keeps the first pattern.
func (b *URLBuilder) Register(name, method, pattern string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.routes[name]; ok {
		return
	}
	b.routes[name] = NamedRoute{Name: name, Method: method, Pattern: pattern}
}

// URLFor builds the URL of the named route. Params matching a :param or *param
// segment are substituted into the path, the rest are appended as a query string
// sorted by key.
func (b *URLBuilder) URLFor(name string, params map[string]string) (string, error) {
	b.mu.RLock()
	route, ok := b.routes[name]
	b.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("no route named %q", name)
	}

	used := make(map[string]bool)
	segments := strings.Split(route.Pattern, "/")
	for i, seg := range segments {
		if seg == "" || (seg[0] != ':' && seg[0] != '*') {
			continue
		}
		key := seg[1:]
		value, ok := params[key]
		if !ok {
			return "", fmt.Errorf("route %q requires parameter %q", name, key)
		}
		used[key] = true

		if seg[0] == '*' {
			segments[i] = escapePath(strings.TrimPrefix(value, "/"))
		} else {
			segments[i] = url.PathEscape(value)
		}
	}

	path := strings.Join(segments, "/")

	query := url.Values{}
	for key, value := range params {
		if !used[key] {
			query.Set(key, value)
		}
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	return path, nil
}

// Routes returns the registered routes sorted by name
func (b *URLBuilder) Routes() []NamedRoute {
	b.mu.RLock()
	defer b.mu.RUnlock()

	routes := make([]NamedRoute, 0, len(b.routes))
	for _, r := range b.routes {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Name < routes[j].Name })
	return routes
}

// templateURLFor adapts URLFor to templates: {{ url_for "show_name" "name" .Name }}
func (b *URLBuilder) templateURLFor(name string, pairs ...string) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("url_for %q: odd number of parameter arguments", name)
	}
	params := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		params[pairs[i]] = pairs[i+1]
	}
	return b.URLFor(name, params)
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
