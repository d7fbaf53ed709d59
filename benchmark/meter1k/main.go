package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxMeters int = 1000
var httpHostPort string = "127.0.0.1:4000"

var locations = []string{"plant-a", "plant-b", "rooftop", "substation-7", "lab"}

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	meterIDs := make([]string, maxMeters)
	for i := range maxMeters {
		meterIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v meter IDs\n", maxMeters)

	resp, err := http.Get(fmt.Sprintf("http://%s/", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxMeters {
		wg.Add(1)
		go func() {
			postReading(meterIDs[i])
			fmt.Printf("\rposted first reading for meter %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rposted first reading for %v meters: used time=%v seconds, throughput=%v action/second\n",
		maxMeters, usedTime.Seconds(), float64(maxMeters)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxMeters {
		wg.Add(1)
		go func() {
			doAction(meterIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v meters: used time=%v seconds, throughput=%v action/second\n",
		maxMeters, usedTime.Seconds(), float64(maxMeters*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

// postReading sends one sample with a randomized subset of the optional
// fields, so the stored collection ends up with partial documents too.
func postReading(meterID string) {
	payload := map[string]any{
		"deviceId": meterID,
		"location": locations[rnd.Intn(len(locations))],
	}
	if flipCoin() {
		payload["vol"] = rndFloat64(220.0, 240.0, 1)
	}
	if flipCoin() {
		payload["current"] = rndFloat64(0.0, 30.0, 2)
	}
	if flipCoin() {
		payload["power"] = rndFloat64(0.0, 5000.0, 1)
	}
	if flipCoin() {
		payload["energy"] = rndFloat64(0.0, 10000.0, 3)
	}
	if flipCoin() {
		payload["frequency"] = rndFloat64(49.5, 50.5, 2)
	}
	if flipCoin() {
		payload["pf"] = rndFloat64(0.5, 1.0, 2)
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("response status code != 201: %v", resp))
	}
}

func doAction(meterID string) {
	actions := []func(){
		genPostReadingAction(meterID),
		genListReadingsAction(meterID),
		genCheckStatusAction(),
	}
	actionNames := []string{
		"PostReading",
		"ListReadings",
		"CheckStatus",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for meter %v", actionNames[index], meterID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostReadingAction(meterID string) func() {
	return func() {
		postReading(meterID)
	}
}

func genListReadingsAction(meterID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/readings?deviceId=%s&limit=10", httpHostPort, meterID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genCheckStatusAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
