// SPDX-License-Identifier: EPL-2.0

package catalog

// Defaults is the built-in library used when no catalog file can be read.
// The first three sounds are free.
func Defaults() []Track {
	return []Track{
		{ID: 1, Name: "Rain", Description: "Gentle rain sounds", Asset: "Sounds/rain.mp3", Category: "Nature", Icon: "rain_icon.png"},
		{ID: 2, Name: "Ocean Waves", Description: "Calming ocean waves", Asset: "Sounds/ocean.mp3", Category: "Nature", Icon: "ocean_icon.png"},
		{ID: 3, Name: "Forest", Description: "Forest ambience", Asset: "Sounds/forest.mp3", Category: "Nature", Icon: "forest_icon.png"},
		{ID: 4, Name: "Thunderstorm", Description: "Distant thunder", Asset: "Sounds/thunder.mp3", Category: "Nature", Premium: true, Icon: "thunder_icon.png"},
		{ID: 5, Name: "Fireplace", Description: "Crackling fire", Asset: "Sounds/fire.mp3", Category: "Indoor", Premium: true, Icon: "fire_icon.png"},
		{ID: 6, Name: "White Noise", Description: "Pure white noise", Asset: "Sounds/whitenoise.mp3", Category: "Noise", Premium: true, Icon: "whitenoise_icon.png"},
		{ID: 7, Name: "Birds", Description: "Morning birds", Asset: "Sounds/birds.mp3", Category: "Nature", Premium: true, Icon: "birds_icon.png"},
		{ID: 8, Name: "Wind", Description: "Gentle wind", Asset: "Sounds/wind.mp3", Category: "Nature", Premium: true, Icon: "wind_icon.png"},
	}
}
