package desktop

import (
	"github.com/wundara/folio-desktop/internal/model"
)

// ActivateDockItem runs dock item id. Links go to the LinkOpener; app
// items open the desktop icon their action names.
func (d *Desktop) ActivateDockItem(id string) bool {
	item, ok := d.portfolio.DockItem(id)
	if !ok {
		d.log.Warn("unknown dock item", "id", id)
		return false
	}

	switch item.Kind {
	case model.DockLink:
		if d.opener == nil {
			d.log.Info("no link opener configured", "id", id, "url", item.URL)
			return false
		}
		if err := d.opener.OpenLink(item.URL, item.External); err != nil {
			d.log.Error("failed to open dock link", err, "id", id, "url", item.URL)
			return false
		}
		return true
	case model.DockApp:
		if _, ok := d.portfolio.Icon(item.Action); ok {
			return d.ActivateIcon(item.Action)
		}
		d.log.Info("dock app action", "id", id, "action", item.Action)
		return false
	default:
		d.log.Warn("unknown dock item type", "id", id, "type", string(item.Kind))
		return false
	}
}
