package web

import "github.com/gofiber/fiber/v2"

// Register mounts one POST route per tool. The paths match the endpoint names
// the front-end has always posted to.
func Register(app *fiber.App, h *Handlers) {
	app.Post("/find-channel", h.FindChannel)
	app.Post("/get-channel-stats", h.ChannelStats)
	app.Post("/analyze-channel", h.AnalyzeChannel)
	app.Post("/get-images", h.ChannelImages)
	app.Post("/get-video-stats", h.VideoStats)
	app.Post("/extract-tags", h.ExtractTags)
	app.Post("/get-thumbnail", h.Thumbnails)
	app.Post("/search-video", h.Search)
	app.Post("/earnings-calculator", h.Earnings)
	app.Post("/monetization-checker", h.Monetization)
	app.Post("/shadowban-detector", h.Shadowban)
	app.Post("/data-viewer", h.DataViewer)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
