package main

import (
	"encoding/json"
	"flag"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/config"
	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/service"
)

func main() {
	devices := flag.Int("devices", 5, "device ids 1..n to report on")
	rounds := flag.Int("rounds", 20, "number of reporting rounds")
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	topic := config.MQTTUsageTopic()
	for i := 0; i < *rounds; i++ {
		for id := 1; id <= *devices; id++ {
			r := service.UsageReport{
				DeviceID:   int64(id),
				DailyUsage: rand.Float64() * 12,
				Timestamp:  time.Now(),
			}
			payload, _ := json.Marshal(r)
			token := client.Publish(topic, 1, false, payload)
			token.Wait()
		}
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
