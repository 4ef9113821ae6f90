package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"geoo/config"
	"geoo/internal/domain/constants"
	"geoo/internal/infra/auth"
	"geoo/internal/usecase"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Default fence: the UWI Department of Computing, Mona campus.
const (
	defaultRegionID  = "10101"
	defaultLatitude  = 18.006372
	defaultLongitude = -76.750096
	defaultRadius    = 1000
)

type simFlags struct {
	broker   string
	topic    string
	devices  int
	interval time.Duration
	steps    int
	distance float64
	register string
	secret   string
}

type locationMessage struct {
	DeviceID  string  `json:"device_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// devicesim walks simulated devices through the default fence and publishes
// their fixes over MQTT. With -register it first creates the fence via the API.
func main() {
	var flags simFlags
	flag.StringVar(&flags.broker, "broker", "tcp://localhost:1883", "MQTT broker URL")
	flag.StringVar(&flags.topic, "topic", "/geoo/device/%s/location", "Topic format, %s is replaced by the device ID")
	flag.IntVar(&flags.devices, "devices", 1, "Number of simulated devices")
	flag.DurationVar(&flags.interval, "interval", time.Second, "Delay between fixes")
	flag.IntVar(&flags.steps, "steps", 20, "Fixes per walk")
	flag.Float64Var(&flags.distance, "distance", 2*defaultRadius, "Walk start and end distance from the fence center in meters")
	flag.StringVar(&flags.register, "register", "", "API base URL; registers the default fence before walking")
	flag.StringVar(&flags.secret, "secret", "change-me", "Access token secret used with -register")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &flags, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, flags *simFlags, logger *slog.Logger) error {
	if flags.register != "" {
		if err := registerFence(ctx, flags.register, flags.secret); err != nil {
			return err
		}
		logger.Info("Fence registered", slog.String("region_id", defaultRegionID))
	}

	opts := mqtt.NewClientOptions().
		AddBroker(flags.broker).
		SetClientID(fmt.Sprintf("geoo-devicesim-%d", os.Getpid()))

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return errors.Wrap(token.Error(), "mqtt connect")
	}
	defer client.Disconnect(250)

	path := walkPath(orb.Point{defaultLongitude, defaultLatitude}, flags.distance, flags.steps)

	g, ctx := errgroup.WithContext(ctx)
	for i := range flags.devices {
		deviceID := fmt.Sprintf("sim-%02d", i+1)
		g.Go(func() error {
			return walk(ctx, client, flags, deviceID, path, logger)
		})
	}

	return g.Wait()
}

func walk(ctx context.Context, client mqtt.Client, flags *simFlags, deviceID string, path []orb.Point, logger *slog.Logger) error {
	topic := fmt.Sprintf(flags.topic, deviceID)
	ticker := time.NewTicker(flags.interval)
	defer ticker.Stop()

	for _, point := range path {
		payload, err := json.Marshal(locationMessage{
			DeviceID:  deviceID,
			Latitude:  point.Lat(),
			Longitude: point.Lon(),
			Timestamp: time.Now().Unix(),
		})
		if err != nil {
			return errors.WithStack(err)
		}

		token := client.Publish(topic, 1, false, payload)
		if token.Wait() && token.Error() != nil {
			return errors.Wrapf(token.Error(), "publish to %s", topic)
		}
		logger.Info("Published fix", slog.String("topic", topic), slog.String("payload", string(payload)))

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}

	return nil
}

func registerFence(ctx context.Context, baseURL, secret string) error {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}
	token, err := tokenSvc.GenerateToken("devicesim", []string{constants.PermissionFineLocation})
	if err != nil {
		return errors.Wrap(err, "sign access token")
	}

	body, err := json.Marshal(usecase.RegisterGeofenceInput{
		ID:        defaultRegionID,
		Label:     "UWI Department of Computing",
		Latitude:  defaultLatitude,
		Longitude: defaultLongitude,
		Radius:    defaultRadius,
		Triggers:  []string{"enter", "exit"},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(baseURL, "/")+"/geofences", bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "register fence")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return errors.Errorf("register fence: unexpected status %d", resp.StatusCode)
	}

	return nil
}
