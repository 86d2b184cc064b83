package murmur_test

import (
	"bytes"
	"context"
	"fmt"
	"testing/fstest"

	"github.com/ik5/murmur"
	"github.com/ik5/murmur/catalog"
	"github.com/ik5/murmur/engine"
	"github.com/ik5/murmur/formats/wav"
	"github.com/ik5/murmur/store"
)

func Example() {
	ctx := context.Background()

	tracks := []catalog.Track{
		{ID: 1, Name: "Rain", Asset: "Sounds/rain.wav"},
		{ID: 2, Name: "Ocean Waves", Asset: "Sounds/ocean.wav"},
		{ID: 3, Name: "Forest", Asset: "Sounds/forest.wav"},
		{ID: 4, Name: "Thunderstorm", Asset: "Sounds/thunder.wav", Premium: true},
	}

	assets := fstest.MapFS{}
	for _, t := range tracks {
		var buf bytes.Buffer
		_ = wav.WriteWAV16(&buf, 8000, 2, make([]int16, 1600))
		assets[t.Asset] = &fstest.MapFile{Data: buf.Bytes()}
	}

	cat, _ := catalog.New(tracks)
	bus := engine.NewBus(8000)
	app := murmur.New(murmur.Deps{
		Catalog:  cat,
		Store:    store.New(store.NewMemory()),
		Provider: murmur.VoiceProvider(engine.NewProvider(assets, bus)),
	})
	defer app.Close()

	free, _ := app.Load(ctx)
	fmt.Println("free sounds:", len(free))

	for _, t := range tracks {
		out, _ := app.Toggle(ctx, t.ID)
		fmt.Println(t.Name, out)
	}
	fmt.Println("active:", app.Active())

	app.StopAll()
	fmt.Println("active:", app.Active())
	// Output:
	// free sounds: 3
	// Rain started
	// Ocean Waves started
	// Forest started
	// Thunderstorm limit-reached
	// active: [1 2 3]
	// active: []
}
