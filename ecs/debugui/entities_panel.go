package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/linkwalk/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	ArchetypeID    uint32
	ComponentTypes []string
}

type ComponentInfo struct {
	Type  string
	Value string
}

// ListEntities returns every live entity, grouped by archetype in archetype id order.
func ListEntities(storage *ecs.Storage) []EntityInfo {
	var entities []EntityInfo
	for _, archetype := range storage.GetArchetypes() {
		componentTypes := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			componentTypes[i] = t.String()
		}

		for entityId := range archetype.Iter() {
			entities = append(entities, EntityInfo{
				ID:             entityId,
				ArchetypeID:    archetype.ID(),
				ComponentTypes: componentTypes,
			})
		}
	}
	return entities
}

// DescribeEntity formats each component of the entity. Returns nil for dead entities.
func DescribeEntity(storage *ecs.Storage, id ecs.EntityId) []ComponentInfo {
	archetype := storage.GetArchetypeById(id.ArchetypeId())
	if archetype == nil || !storage.Alive(id) {
		return nil
	}

	components := make([]ComponentInfo, 0, len(archetype.Types()))
	for _, compType := range archetype.Types() {
		component := storage.GetComponent(id, compType)
		if component == nil {
			continue
		}
		components = append(components, ComponentInfo{
			Type:  compType.String(),
			Value: formatComponent(component),
		})
	}
	return components
}

func formatComponent(component any) string {
	if s, ok := component.(fmt.Stringer); ok {
		return s.String()
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", component), "&")
}

// EntitiesPanel lists entities and shows the components of the selected one.
type EntitiesPanel struct {
	Storage *ecs.Storage

	selected    ecs.EntityId
	hasSelected bool
}

func (ep *EntitiesPanel) Render() {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	entities := ListEntities(ep.Storage)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 160), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Archetype ID")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, entity := range entities {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := ep.hasSelected && ep.selected == entity.ID
			if imgui.SelectableBoolV(entity.ID.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ep.selected = entity.ID
				ep.hasSelected = true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", entity.ArchetypeID))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}
	imgui.Text(fmt.Sprintf("Total: %d entities", len(entities)))

	imgui.Separator()
	if !ep.hasSelected {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	components := DescribeEntity(ep.Storage, ep.selected)
	if components == nil {
		imgui.Text(fmt.Sprintf("Entity %s no longer exists", ep.selected))
		ep.hasSelected = false
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %s", ep.selected))
	for _, component := range components {
		imgui.BulletText(component.Type + ": " + component.Value)
	}

	imgui.End()
}
