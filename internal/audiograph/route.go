package audiograph

// Route is a card output or input path such as speakers or headphones.
type Route struct {
	Index       int    `json:"index"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Direction   string `json:"direction,omitempty"`
	Available   any    `json:"available,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
	// Device is the card-local device the route is applied to; only set for active routes.
	Device *int `json:"device,omitempty"`
}

// Unavailable reports whether the availability marker explicitly says "no".
func (r Route) Unavailable() bool {
	s, ok := r.Available.(string)
	return ok && (s == availabilityNo || s == availabilityNoWrapped)
}

// ListRoutes returns the card's enumerated routes, dropping entries without an index.
func ListRoutes(card Card) []Route {
	return routesFrom(card, paramEnumRoute)
}

// ActiveRoutes returns the routes currently applied to the card's devices.
func ActiveRoutes(card Card) []Route {
	return routesFrom(card, paramRoute)
}

func routesFrom(card Card, param string) []Route {
	entries := card.params.Get(param).List()
	routes := make([]Route, 0, len(entries))
	for _, entry := range entries {
		index, ok := entry.Get("index").Int()
		if !ok {
			continue
		}
		route := Route{
			Index:     index,
			Available: entry.Get("available").Raw(),
		}
		route.Name, _ = entry.Get("name").String()
		route.Description, _ = entry.Get("description").String()
		route.Direction, _ = entry.Get("direction").String()
		if priority, ok := entry.Get("priority").Int(); ok {
			route.Priority = &priority
		}
		if device, ok := entry.Get("device").Int(); ok {
			route.Device = &device
		}
		routes = append(routes, route)
	}
	return routes
}
