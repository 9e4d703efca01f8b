package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"grouping-service/api"
	"grouping-service/internal/client"
	"grouping-service/internal/grouping"
)

const (
	targetHost   = "http://localhost:8081" // e2e окружение
	tournamentID = "load-tournament"
	categoryID   = "load-category"
	rps          = 20
	duration     = 3 * time.Minute
	teamsCount   = 64
	poolsCount   = 8
)

var (
	teams []string
	pools []string
)

// Seed
func seedData(ctx context.Context, c *client.Client) error {
	log.Println("Seeding: creating pools...")

	var apiErr *client.APIError
	stages, err := c.GeneratePools(ctx, tournamentID, categoryID, poolsCount, nil)
	switch {
	case errors.As(err, &apiErr) && apiErr.Code == string(api.STAGEEXISTS):
		log.Println("WARN pools already exist, reusing")
		stages, err = c.ListStages(ctx, tournamentID, categoryID)
		if err != nil {
			return err
		}
	case err != nil:
		return err
	}
	for _, stage := range stages {
		pools = append(pools, stage.Name)
	}
	if len(pools) == 0 {
		return errors.New("no pools to drop into")
	}

	log.Println("Seeding: registering teams...")

	category := categoryID
	for i := 1; i <= teamsCount; i++ {
		teamID := fmt.Sprintf("team-%03d", i)
		organisation := fmt.Sprintf("Club %d", i%10)
		_, err := c.RegisterTeam(ctx, tournamentID, api.RegisterTeamJSONRequestBody{
			TeamId:           teamID,
			TeamName:         fmt.Sprintf("Team %d", i),
			OrganisationName: &organisation,
			CategoryId:       &category,
		})
		if err != nil && !(errors.As(err, &apiErr) && apiErr.Code == string(api.TEAMEXISTS)) {
			return err
		}
		teams = append(teams, teamID)
		time.Sleep(10 * time.Millisecond)
	}

	log.Printf("Seed completed: teams=%d pools=%d\n", len(teams), len(pools))
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	boardURL := fmt.Sprintf("%s/api/v1/tournaments/%s/grouping?categoryId=%s", targetHost, tournamentID, categoryID)
	dropURL := fmt.Sprintf("%s/api/v1/tournaments/%s/grouping/drop", targetHost, tournamentID)
	category := categoryID

	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 50% GET доска
		if r < 0.50 {
			t.Method = http.MethodGet
			t.URL = boardURL
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 40% перенос в пул, 10% обратно в нераспределенные
		container := pools[rand.Intn(len(pools))]
		if r >= 0.90 {
			container = grouping.UnassignedContainerID
		}

		body, err := json.Marshal(api.DropTeamJSONRequestBody{
			CategoryId:  &category,
			TeamId:      teams[rand.Intn(len(teams))],
			ContainerId: container,
		})
		if err != nil {
			return err
		}
		t.Method = http.MethodPost
		t.URL = dropURL
		t.Body = body
		t.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "grouping-load") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, count := range metrics.StatusCodes {
		fmt.Printf("Status %s: %d\n", code, count)
	}
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c, err := client.New(targetHost, 10*time.Second)
	if err != nil {
		log.Fatalf("Client init failed: %v", err)
	}

	if err := seedData(ctx, c); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
