package schema

import "fmt"

var (
	// ChatHistory stores the conversation turns of an intake session.
	ChatHistory = MustEntity("chat_history", "Chat history", "chat_history",
		Field{Name: "id", Type: Integer},
		Field{Name: "user_id", Type: String},
		Field{Name: "session_id", Type: String, Required: true},
		Field{Name: "role", Type: String, Required: true},
		Field{Name: "content", Type: String, Required: true},
		Field{Name: "intake_step", Type: String},
		Field{Name: "created_at", Type: String, Required: true},
	)

	// ProtocolRecommendations stores protocols recommended for a profile.
	ProtocolRecommendations = MustEntity("protocol_recommendations", "Protocol recommendation", "protocol_recommendations",
		Field{Name: "id", Type: Integer},
		Field{Name: "user_id", Type: String},
		Field{Name: "profile_id", Type: Integer},
		Field{Name: "protocol_name", Type: String, Required: true},
		Field{Name: "core_product", Type: String},
		Field{Name: "catalyst_product", Type: String},
		Field{Name: "foundation_product", Type: String},
		Field{Name: "confidence_level", Type: String, Required: true},
		Field{Name: "risk_level", Type: String},
		Field{Name: "warnings", Type: String},
		Field{Name: "eligibility", Type: String, Required: true},
		Field{Name: "mechanistic_basis", Type: String},
		Field{Name: "created_at", Type: String, Required: true},
	)

	// Subscriptions stores product delivery subscriptions.
	Subscriptions = MustEntity("subscriptions", "Subscription", "subscriptions",
		Field{Name: "id", Type: Integer},
		Field{Name: "user_id", Type: String},
		Field{Name: "protocol_id", Type: Integer},
		Field{Name: "subscription_type", Type: String, Required: true},
		Field{Name: "status", Type: String, Required: true},
		Field{Name: "start_date", Type: String, Required: true},
		Field{Name: "next_delivery_date", Type: String},
		Field{Name: "created_at", Type: String, Required: true},
		Field{Name: "updated_at", Type: String},
	)

	// UserProfiles stores the intake profile of a user.
	UserProfiles = MustEntity("user_profiles", "User profile", "user_profiles",
		Field{Name: "id", Type: Integer},
		Field{Name: "user_id", Type: String},
		Field{Name: "primary_goal", Type: String, Required: true},
		Field{Name: "medications", Type: String},
		Field{Name: "medical_conditions", Type: String},
		Field{Name: "allergies", Type: String},
		Field{Name: "age_verified", Type: Boolean, Required: true},
		Field{Name: "language_preference", Type: String},
		Field{Name: "created_at", Type: String, Required: true},
		Field{Name: "updated_at", Type: String},
	)
)

// Registry is the immutable set of entities served by the API.
type Registry struct {
	entities []*Entity
	byName   map[string]*Entity
}

// NewRegistry returns a registry of the given entities.
// Entity names and tables must be unique.
func NewRegistry(entities ...*Entity) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Entity, len(entities))}
	tables := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		if _, dup := r.byName[e.Name]; dup {
			return nil, fmt.Errorf("duplicate entity %s", e.Name)
		}
		if _, dup := tables[e.Table]; dup {
			return nil, fmt.Errorf("duplicate table %s", e.Table)
		}
		r.byName[e.Name] = e
		tables[e.Table] = struct{}{}
		r.entities = append(r.entities, e)
	}
	return r, nil
}

// DefaultRegistry returns the registry of all built-in entities.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(ChatHistory, ProtocolRecommendations, Subscriptions, UserProfiles)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the entity with the given name, or nil.
func (r *Registry) Get(name string) *Entity {
	return r.byName[name]
}

// All returns the entities in registration order.
func (r *Registry) All() []*Entity {
	return r.entities
}
