package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/sirupsen/logrus"
)

const (
	beepSampleRate = 44100
	beepFrequency  = 880.0
	beepDuration   = 180 * time.Millisecond
)

// Global audio context singleton
var (
	audioCtx     *oto.Context
	audioCtxOnce sync.Once
	audioReady   bool
)

func initAudioContext() {
	audioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   beepSampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			logrus.WithError(err).Warn("Failed to initialize audio context")
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		audioCtx = ctx
		audioReady = true
	})
}

// confirmTone synthesizes a short sine beep as 16-bit mono PCM
func confirmTone() []byte {
	samples := int(float64(beepSampleRate) * beepDuration.Seconds())
	buf := &bytes.Buffer{}
	for i := 0; i < samples; i++ {
		// Linear fade-out keeps the tone from clicking when it stops
		fade := 1 - float64(i)/float64(samples)
		v := math.Sin(2 * math.Pi * beepFrequency * float64(i) / beepSampleRate)
		binary.Write(buf, binary.LittleEndian, int16(v*fade*0.3*math.MaxInt16))
	}
	return buf.Bytes()
}

// playConfirmSound plays the confirmation beep without blocking the UI.
// Audio failures are logged and otherwise ignored.
func playConfirmSound() {
	initAudioContext()
	if !audioReady || audioCtx == nil {
		return
	}

	go func() {
		player := audioCtx.NewPlayer(bytes.NewReader(confirmTone()))
		player.Play()

		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}

		if err := player.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close audio player")
		}
	}()
}
