package evaluator

import (
	"encoding/json"
	"fmt"
	"reflect"

	env "github.com/samuelfneumann/gopredict/environment"
	"gopkg.in/yaml.v3"
)

// Type represents a specific type of an evaluator Config.
// Config's with this type can create Evaluators of the corresponding
// type.
type Type string

const (
	MonteCarlo Type = "MonteCarlo"
	TD         Type = "TD"
	TDLambda   Type = "TDLambda"
)

// Config represents a configuration for creating an Evaluator
type Config interface {
	// CreateEvaluator creates the Evaluator that the Config describes
	CreateEvaluator(e env.Environment) (Evaluator, error)

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of Evaluator the Config creates
	Type() Type
}

// Registered types with the package. Once a Type has been registered
// with this map, a TypedConfig with that type can be deserialized.
//
// No Type's are registered with this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes = make(map[Type]reflect.Type)

// Register registers an evaluator's Type with a concrete Config type
// so that upon deserialization of a TypedConfig, Configs of type
// evalType are deserialized into the concrete type of config.
func Register(evalType Type, config Config) {
	registeredTypes[evalType] = reflect.TypeOf(config)
}

// TypedConfig implements functionality for typing a Config. In this
// way, a Config can explicitly have its type stored so that when
// deserializing the Config, we can deserialize it into its concrete
// type without knowing beforehand its concrete type.
//
// The Name is used to refer to the Evaluator in experiment results and
// defaults to the Type.
type TypedConfig struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Type   Type   `json:"type" yaml:"type"`
	Config Config `json:"config" yaml:"config"`
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(name string, c Config) TypedConfig {
	return TypedConfig{Name: name, Type: c.Type(), Config: c}
}

// String returns the name of the TypedConfig
func (t TypedConfig) String() string {
	if t.Name == "" {
		return string(t.Type)
	}
	return t.Name
}

// Validate ensures that the TypedConfig and its Config are valid
func (t TypedConfig) Validate() error {
	if t.Config == nil {
		return fmt.Errorf("validate: no config for evaluator %v", t)
	}
	if t.Config.Type() != t.Type {
		return fmt.Errorf("validate: evaluator %v has type %v but config "+
			"of type %v", t, t.Type, t.Config.Type())
	}
	if err := t.Config.Validate(); err != nil {
		return fmt.Errorf("validate: evaluator %v: %v", t, err)
	}
	return nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string          `json:"name"`
		Type   Type            `json:"type"`
		Config json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	value, err := newConfig(raw.Type)
	if err != nil {
		return err
	}
	if len(raw.Config) > 0 {
		if err := json.Unmarshal(raw.Config, value.Interface()); err != nil {
			return fmt.Errorf("unmarshalJSON: %v config: %v", raw.Type, err)
		}
	}

	t.Name = raw.Name
	t.Type = raw.Type
	t.Config = value.Elem().Interface().(Config)
	return nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (t *TypedConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name   string    `yaml:"name"`
		Type   Type      `yaml:"type"`
		Config yaml.Node `yaml:"config"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	value, err := newConfig(raw.Type)
	if err != nil {
		return err
	}
	if !raw.Config.IsZero() {
		if err := raw.Config.Decode(value.Interface()); err != nil {
			return fmt.Errorf("unmarshalYAML: %v config: %v", raw.Type, err)
		}
	}

	t.Name = raw.Name
	t.Type = raw.Type
	t.Config = value.Elem().Interface().(Config)
	return nil
}

// newConfig returns a pointer to a new zero Config of the registered
// concrete type of configType
func newConfig(configType Type) (reflect.Value, error) {
	ty, found := registeredTypes[configType]
	if !found {
		return reflect.Value{}, fmt.Errorf("no evaluator of type %q "+
			"registered", configType)
	}
	return reflect.New(ty), nil
}
