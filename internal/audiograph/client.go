package audiograph

import "pwquick/internal/pwdump"

// Client is a process connected to the PipeWire server.
type Client struct {
	ID          int    `json:"id"`
	Application string `json:"application"`
	Binary      string `json:"binary,omitempty"`
	PID         *int   `json:"pid,omitempty"`
}

// ExtractClients returns every client with a resolvable id in dump order.
// The application label falls back to the process binary, then "unknown".
func ExtractClients(dump pwdump.Dump) []Client {
	var clients []Client
	for _, obj := range dump.OfKind(pwdump.KindClient) {
		id, ok := obj.ID()
		if !ok {
			continue
		}
		props := obj.Props()
		client := Client{ID: id}
		client.Binary, _ = props.Get("application.process.binary").String()
		client.Application = props.Get("application.name").StringOr(client.Binary)
		if client.Application == "" {
			client.Application = "unknown"
		}
		if pid, ok := props.Get("application.process.id").Int(); ok {
			client.PID = &pid
		}
		clients = append(clients, client)
	}
	return clients
}
