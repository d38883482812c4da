package bootstrap

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
)

// emulatorProjectID is used when FIRESTORE_EMULATOR_HOST is set without a project.
const emulatorProjectID = "budget-planner-local"

func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		if os.Getenv("FIRESTORE_EMULATOR_HOST") != "" {
			projectID = emulatorProjectID
		} else {
			projectID = firestore.DetectProjectID
		}
	}
	return firestore.NewClient(ctx, projectID)
}
