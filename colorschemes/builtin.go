package colorschemes

func init() {
	register("default", Colorscheme{
		Background: "#333333",
		Needle:     "#ff4c4c",
		Tick:       "#cccccc",
		ValueText:  "#ffffff",
		Title:      "#e6e6e6",
		Safe:       "#33ff334c",
		Warning:    "#ffcc004c",
		Danger:     "#ff33334c",

		Fg:          7,
		Bg:          -1,
		BorderLabel: 7,
		BorderLine:  6,
	})

	register("monokai", Colorscheme{
		Author:     "deadneon",
		Background: "#272822",
		Needle:     "#f92672",
		Tick:       "#75715e",
		ValueText:  "#f8f8f2",
		Title:      "#e6db74",
		Safe:       "#a6e22e4c",
		Warning:    "#fd971f4c",
		Danger:     "#f926724c",

		Fg:          249,
		Bg:          -1,
		BorderLabel: 249,
		BorderLine:  239,
	})

	register("solarized", Colorscheme{
		Author:     "Ethan Schoonover",
		Background: "#002b36",
		Needle:     "#dc322f",
		Tick:       "#93a1a1",
		ValueText:  "#fdf6e3",
		Title:      "#eee8d5",
		Safe:       "#8599004c",
		Warning:    "#b589004c",
		Danger:     "#dc322f4c",

		Fg:          250,
		Bg:          -1,
		BorderLabel: 250,
		BorderLine:  37,
	})

	register("vice", Colorscheme{
		Background: "#1a1a1a",
		Needle:     "#ff00ff",
		Tick:       "#00ffff",
		ValueText:  "#ffffff",
		Title:      "#ff69b4",
		Safe:       "#00ff7f4c",
		Warning:    "#ffff004c",
		Danger:     "#ff14934c",

		Fg:          231,
		Bg:          -1,
		BorderLabel: 201,
		BorderLine:  51,
	})
}
