//go:build darwin

package beep

import (
	"sync"
	"sync/atomic"

	"github.com/gen2brain/malgo"

	"loadforever/log"
)

var (
	malgoCtx  *malgo.AllocatedContext
	device    *malgo.Device
	soundOnce sync.Once

	// Playback state - accessed atomically from callback
	playSamples atomic.Pointer[[]byte]
	playPos     atomic.Uint32
	playMu      sync.Mutex
)

func initDevice() error {
	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.Playback.Format = malgo.FormatS16
	config.Playback.Channels = 1
	config.SampleRate = sampleRate

	var err error
	device, err = malgo.InitDevice(malgoCtx.Context, config, malgo.DeviceCallbacks{Data: dataCallback})
	return err
}

func initSound() {
	var err error
	malgoCtx, err = malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		log.Warnf("malgo context: %v", err)
		return
	}
	if err := initDevice(); err != nil {
		log.Warnf("malgo device: %v", err)
		malgoCtx.Uninit()
		malgoCtx = nil
	}
}

func dataCallback(pOutput, _ []byte, frameCount uint32) {
	samples := playSamples.Load()
	want := frameCount * 2
	var written uint32
	if samples != nil {
		pos := playPos.Load()
		if remaining := uint32(len(*samples)) - pos; remaining > 0 {
			written = min(want, remaining)
			copy(pOutput[:written], (*samples)[pos:pos+written])
			playPos.Store(pos + written)
		} else {
			playSamples.Store(nil)
		}
	}
	for i := written; i < uint32(len(pOutput)); i++ {
		pOutput[i] = 0
	}
}

func Init() {
	soundOnce.Do(initSound)
}

func play(samples []int16) {
	soundOnce.Do(initSound)
	if malgoCtx == nil || len(samples) == 0 {
		return
	}

	playMu.Lock()
	defer playMu.Unlock()

	if device == nil {
		return
	}
	device.Stop()

	buf := toBytes(samples)
	playPos.Store(0)
	playSamples.Store(&buf)

	if err := device.Start(); err != nil {
		// Recreate the device (macOS sleep/wake drops it)
		device.Uninit()
		if err := initDevice(); err != nil {
			playSamples.Store(nil)
			return
		}
		if err := device.Start(); err != nil {
			playSamples.Store(nil)
		}
	}
}
