package requests

// RecipientSelector is the tagged form of "who gets this": a concrete user
// (ID set) or every current holder of Role (ID empty).
type RecipientSelector struct {
	ID   string `json:"id"`
	Role string `json:"role" validate:"required,actor_role"`
}

type CreateNotification struct {
	Recipient       RecipientSelector `json:"recipient"`
	Type            string            `json:"type" validate:"required"`
	Message         string            `json:"message" validate:"required"`
	RelatedEntity   string            `json:"relatedEntity"`
	RelatedEntityID string            `json:"relatedEntityId"`
}

type BroadcastNotification struct {
	Role            string `json:"role" validate:"required,actor_role"`
	Type            string `json:"type" validate:"required"`
	Message         string `json:"message" validate:"required"`
	RelatedEntity   string `json:"relatedEntity"`
	RelatedEntityID string `json:"relatedEntityId"`
}
