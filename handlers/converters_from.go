package handlers

import (
	"mynaming/domain"
	"mynaming/service"
)

// fromRegisterRequest converts RegisterRequest to domain.Entry.
// Host and port fall back to Resource when absent. Field validation is left to the registry.
func fromRegisterRequest(req RegisterRequest) (domain.Entry, error) {
	host, port := req.Host, req.Port
	if (host == "" || port == 0) && service.Value(req.Resource) != "" {
		resHost, resPort, err := service.SplitResource(*req.Resource)
		if err != nil {
			return domain.Entry{}, err
		}
		if host == "" {
			host = resHost
		}
		if port == 0 {
			port = resPort
		}
	}

	entry := domain.Entry{
		Name:         req.Name,
		Host:         host,
		Port:         port,
		Kind:         domain.Kind(service.Value(req.Kind)),
		LeaseSeconds: req.LeaseSeconds,
	}
	if req.Iface != nil {
		entry.Iface = *req.Iface
	}
	if req.Meta != nil {
		entry.Meta = *req.Meta
	}
	return entry, nil
}

// fromUnregisterRequest validates UnregisterRequest. Only the name is mandatory.
func fromUnregisterRequest(req UnregisterRequest) (string, string, int, error) {
	if req.Name == "" {
		return "", "", 0, service.NewBadParameterError("name is required", nil)
	}
	return req.Name, req.Host, req.Port, nil
}
