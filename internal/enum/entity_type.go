package enum

type EntityType string

const (
	DOMAIN        EntityType = "DOMAIN"
	EMAIL_ADDRESS EntityType = "EMAIL_ADDRESS"
	LEAD          EntityType = "LEAD"
)

func (entityType EntityType) String() string {
	return string(entityType)
}

func GetEntityType(s string) EntityType {
	return EntityType(s)
}
