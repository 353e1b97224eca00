package responses

import "emr-service/internal/app/models"

type Broadcast struct {
	Recipients    int                    `json:"recipients"`
	Notifications []*models.Notification `json:"notifications"`
}
