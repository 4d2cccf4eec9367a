// Package deck loads chart configurations.
//
// A configuration names the chart, lists the decks to draw and sets a few
// rendering options. JSON is the default format:
//
//	{
//	  "title": "Regional Top Cut",
//	  "decks": {
//	    "Spellcasters": {"count": 12, "card": "Dark Magician"},
//	    "Dragons":      {"count": 8,  "card": "Blue-Eyes White Dragon"}
//	  },
//	  "pie_outline_color": "black",
//	  "zoom_level": 0.72
//	}
//
// Files ending in .toml are read as TOML with the same keys, decks as a
// table of tables:
//
//	title = "Regional Top Cut"
//
//	[decks.Spellcasters]
//	count = 12
//	card = "Dark Magician"
//
// Deck order is the order of the document in both formats; it decides the
// order of the wedges around the pie. A deck name that appears twice keeps
// its first position and its last value.
//
// # Optional keys
//
//   - pie_outline_color: wedge outline color (default "black")
//   - background: canvas color (default white)
//   - zoom_level: artwork zoom (default 0.72; 0 also means default)
//   - cache: {"backend": "file"|"redis"|"none", "dir": ..., "redis_addr": ...}
//   - workers: concurrent image downloads (default 1)
//   - retries: retries per lookup request (default 0)
//
// [Load] applies defaults and validates; [Read] and [ReadTOML] only decode.
package deck
