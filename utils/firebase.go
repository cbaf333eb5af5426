// utils/firebase.go
package utils

import (
	"context"
	"log"

	"github.com/Omoefe-bazunu/hhaven/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	FirebaseApp     *firebase.App
	FirestoreClient *firestore.Client
	AuthClient      *auth.Client
	FCMClient       *messaging.Client
)

// FirebaseInit initializes the Firebase App plus the Firestore, Auth and
// Messaging clients the rest of the app depends on.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	cfg := &firebase.Config{
		ProjectID:     config.AppConfig.FirebaseProjectID,
		StorageBucket: config.AppConfig.FirebaseStorageBucket,
	}

	app, err := firebase.NewApp(ctx, cfg, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}
	FirebaseApp = app

	fs, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}
	FirestoreClient = fs

	ac, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}
	AuthClient = ac

	mc, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
	FCMClient = mc
}

// GetFirestoreClient returns the Firestore client.
func GetFirestoreClient() *firestore.Client {
	if FirestoreClient == nil {
		FirebaseInit()
	}
	return FirestoreClient
}
