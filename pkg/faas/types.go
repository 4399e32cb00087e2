package faas

// Exec describes how an action runs: source code of a kind, or a sequence of
// other actions.
type Exec struct {
	Kind       string        `json:"kind"                 yaml:"kind"`
	Code       string        `json:"code,omitempty"       yaml:"code,omitempty"`
	Components []interface{} `json:"components,omitempty" yaml:"components,omitempty"`
}

// ActionDocument is the create/update body of an action.
type ActionDocument struct {
	Exec        Exec        `json:"exec"                  yaml:"exec"`
	Parameters  []KeyValue  `json:"parameters,omitempty"  yaml:"parameters,omitempty"`
	Annotations []KeyValue  `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Limits      interface{} `json:"limits,omitempty"      yaml:"limits,omitempty"`
	Version     interface{} `json:"version,omitempty"     yaml:"version,omitempty"`
}

// RuleDocument is the create/update body of a rule. Both fields are fully
// qualified names.
type RuleDocument struct {
	Action  string `json:"action"  yaml:"action"`
	Trigger string `json:"trigger" yaml:"trigger"`
}

// RouteDocument is the body sent to the API gateway management actions.
type RouteDocument struct {
	APIDoc RouteAPIDoc `json:"apidoc" yaml:"apidoc"`
}

// RouteAPIDoc maps a base path, relative path and verb onto an action.
type RouteAPIDoc struct {
	Namespace       string       `json:"namespace"                 yaml:"namespace"`
	GatewayBasePath string       `json:"gatewayBasePath,omitempty" yaml:"gatewayBasePath,omitempty"`
	GatewayPath     string       `json:"gatewayPath,omitempty"     yaml:"gatewayPath,omitempty"`
	GatewayMethod   string       `json:"gatewayMethod,omitempty"   yaml:"gatewayMethod,omitempty"`
	ID              string       `json:"id,omitempty"              yaml:"id,omitempty"`
	Action          *RouteAction `json:"action,omitempty"          yaml:"action,omitempty"`
	APIName         string       `json:"apiName,omitempty"         yaml:"apiName,omitempty"`
	Swagger         interface{}  `json:"swagger,omitempty"         yaml:"swagger,omitempty"`
}

// RouteAction is the backend of a route.
type RouteAction struct {
	Name          string `json:"name"          yaml:"name"`
	Namespace     string `json:"namespace"     yaml:"namespace"`
	BackendMethod string `json:"backendMethod" yaml:"backendMethod"`
	BackendURL    string `json:"backendUrl"    yaml:"backendUrl"`
	AuthKey       string `json:"authkey"       yaml:"authkey"`
}
