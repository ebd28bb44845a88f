// Command example walks the Oura API end to end. With no credentials it
// runs against the sandbox environment; export OURA_ACCESS_TOKEN to run
// against your own data.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/oura-community/oura-go/oura"
)

func main() {
	var client *oura.Client

	if token := os.Getenv("OURA_ACCESS_TOKEN"); token != "" {
		var err error
		client, err = oura.NewClient(token)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Using production API with personal access token")
	} else {
		client = oura.NewSandboxClient()
		log.Println("OURA_ACCESS_TOKEN not set, using sandbox data")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	info, err := client.PersonalInfo.Get(ctx)
	if err != nil {
		log.Fatalf("fetching personal info: %v", err)
	}
	log.Printf("Personal info: id=%s email=%s", info.ID, info.Email)

	end := time.Now()
	start := end.AddDate(0, 0, -7)
	opts := &oura.ListOptions{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}

	activity, err := client.DailyActivity.List(ctx, opts)
	if err != nil {
		logAPIError("daily activity", err)
	} else {
		for _, d := range activity {
			score := -1
			if d.Score != nil {
				score = *d.Score
			}
			log.Printf("Activity %s: steps=%d score=%d calories=%d", d.Day, d.Steps, score, d.TotalCalories)
		}
	}

	sleep, err := client.DailySleep.List(ctx, opts)
	if err != nil {
		logAPIError("daily sleep", err)
	} else {
		for _, d := range sleep {
			score := -1
			if d.Score != nil {
				score = *d.Score
			}
			log.Printf("Sleep %s: score=%d", d.Day, score)
		}
	}

	workouts, err := client.Workout.List(ctx, opts)
	if err != nil {
		logAPIError("workouts", err)
	} else {
		log.Printf("Fetched %d workouts in the last week", len(workouts))
	}
}

// logAPIError demonstrates branching on the typed error taxonomy.
func logAPIError(what string, err error) {
	var apiErr *oura.Error
	if !errors.As(err, &apiErr) {
		log.Printf("fetching %s: %v", what, err)
		return
	}

	switch apiErr.Kind {
	case oura.KindRateLimit:
		log.Printf("fetching %s: rate limited, back off before retrying: %v", what, err)
	case oura.KindValidation:
		log.Printf("fetching %s: bad request: %v", what, err)
	default:
		log.Printf("fetching %s: %v", what, err)
	}
}
