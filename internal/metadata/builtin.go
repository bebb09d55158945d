package metadata

import "github.com/mesh-intelligence/sierra/pkg/types"

// Identities of the built-in component types.
const (
	TypeComponent              = "java.awt.Component"
	TypeContainer              = "java.awt.Container"
	TypeJComponent             = "javax.swing.JComponent"
	TypeJLabel                 = "javax.swing.JLabel"
	TypeAbstractButton         = "javax.swing.AbstractButton"
	TypeJButton                = "javax.swing.JButton"
	TypeJToggleButton          = "javax.swing.JToggleButton"
	TypeJCheckBox              = "javax.swing.JCheckBox"
	TypeJRadioButton           = "javax.swing.JRadioButton"
	TypeJMenuItem              = "javax.swing.JMenuItem"
	TypeJCheckBoxMenuItem      = "javax.swing.JCheckBoxMenuItem"
	TypeJRadioButtonMenuItem   = "javax.swing.JRadioButtonMenuItem"
	TypeJMenu                  = "javax.swing.JMenu"
	TypeJMenuBar               = "javax.swing.JMenuBar"
	TypeJTextComponent         = "javax.swing.text.JTextComponent"
	TypeJTextField             = "javax.swing.JTextField"
	TypeJPasswordField         = "javax.swing.JPasswordField"
	TypeJFormattedTextField    = "javax.swing.JFormattedTextField"
	TypeJTextArea              = "javax.swing.JTextArea"
	TypeJEditorPane            = "javax.swing.JEditorPane"
	TypeJComboBox              = "javax.swing.JComboBox"
	TypeJSpinner               = "javax.swing.JSpinner"
	TypeJSlider                = "javax.swing.JSlider"
	TypeJProgressBar           = "javax.swing.JProgressBar"
	TypeJSeparator             = "javax.swing.JSeparator"
	TypeJScrollPane            = "javax.swing.JScrollPane"
	TypeJSplitPane             = "javax.swing.JSplitPane"
	TypeJTabbedPane            = "javax.swing.JTabbedPane"
	TypeJToolBar               = "javax.swing.JToolBar"
	TypeJList                  = "javax.swing.JList"
	TypeJTable                 = "javax.swing.JTable"
	TypeJTree                  = "javax.swing.JTree"
	TypeJColorChooser          = "javax.swing.JColorChooser"
	TypeJPanel                 = "javax.swing.JPanel"
	TypeLayoutPanel            = "org.httprpc.sierra.LayoutPanel"
	TypeBoxPanel               = "org.httprpc.sierra.BoxPanel"
	TypeRowPanel               = "org.httprpc.sierra.RowPanel"
	TypeColumnPanel            = "org.httprpc.sierra.ColumnPanel"
	TypeStackPanel             = "org.httprpc.sierra.StackPanel"
	TypeSpacer                 = "org.httprpc.sierra.Spacer"
	TypeTextPane               = "org.httprpc.sierra.TextPane"
	TypeImagePane              = "org.httprpc.sierra.ImagePane"
	TypeMenuButton             = "org.httprpc.sierra.MenuButton"
	TypePicker                 = "org.httprpc.sierra.Picker"
	TypeTemporalPicker         = "org.httprpc.sierra.TemporalPicker"
	TypeDatePicker             = "org.httprpc.sierra.DatePicker"
	TypeTimePicker             = "org.httprpc.sierra.TimePicker"
	TypeSuggestionPicker       = "org.httprpc.sierra.SuggestionPicker"
	TypeActivityIndicator      = "org.httprpc.sierra.ActivityIndicator"
	TypeNumberField            = "org.httprpc.sierra.NumberField"
	TypeValidatedTextField     = "org.httprpc.sierra.ValidatedTextField"
	TypeChartPane              = "org.httprpc.sierra.ChartPane"
	DomainHorizontalAlignment  = "org.httprpc.sierra.HorizontalAlignment"
	DomainVerticalAlignment    = "org.httprpc.sierra.VerticalAlignment"
	DomainScaleMode            = "org.httprpc.sierra.ImagePane.ScaleMode"
	DomainOrientation          = "org.httprpc.sierra.UILoader.Orientation"
	DomainFocusLostBehavior    = "org.httprpc.sierra.UILoader.FocusLostBehavior"
	DomainHorizontalScrollBar  = "org.httprpc.sierra.UILoader.HorizontalScrollBarPolicy"
	DomainVerticalScrollBar    = "org.httprpc.sierra.UILoader.VerticalScrollBarPolicy"
	DomainTabPlacement         = "org.httprpc.sierra.UILoader.TabPlacement"
	DomainTabLayoutPolicy      = "org.httprpc.sierra.UILoader.TabLayoutPolicy"
)

// BuiltinBindings returns the standard tag set.
func BuiltinBindings() []types.Binding {
	return []types.Binding{
		{Tag: "label", Type: TypeJLabel},
		{Tag: "button", Type: TypeJButton},
		{Tag: "toggle-button", Type: TypeJToggleButton},
		{Tag: "radio-button", Type: TypeJRadioButton},
		{Tag: "check-box", Type: TypeJCheckBox},
		{Tag: "text-field", Type: TypeJTextField},
		{Tag: "password-field", Type: TypeJPasswordField},
		{Tag: "formatted-text-field", Type: TypeJFormattedTextField},
		{Tag: "combo-box", Type: TypeJComboBox},
		{Tag: "spinner", Type: TypeJSpinner},
		{Tag: "slider", Type: TypeJSlider},
		{Tag: "progress-bar", Type: TypeJProgressBar},
		{Tag: "separator", Type: TypeJSeparator},
		{Tag: "scroll-pane", Type: TypeJScrollPane},
		{Tag: "split-pane", Type: TypeJSplitPane},
		{Tag: "tabbed-pane", Type: TypeJTabbedPane},
		{Tag: "tool-bar", Type: TypeJToolBar},
		{Tag: "menu-bar", Type: TypeJMenuBar},
		{Tag: "menu", Type: TypeJMenu},
		{Tag: "menu-item", Type: TypeJMenuItem},
		{Tag: "check-box-menu-item", Type: TypeJCheckBoxMenuItem},
		{Tag: "radio-button-menu-item", Type: TypeJRadioButtonMenuItem},
		{Tag: "list", Type: TypeJList},
		{Tag: "text-area", Type: TypeJTextArea},
		{Tag: "editor-pane", Type: TypeJEditorPane},
		{Tag: "table", Type: TypeJTable},
		{Tag: "tree", Type: TypeJTree},
		{Tag: "color-chooser", Type: TypeJColorChooser},

		{Tag: "row-panel", Type: TypeRowPanel},
		{Tag: "column-panel", Type: TypeColumnPanel},
		{Tag: "stack-panel", Type: TypeStackPanel},
		{Tag: "spacer", Type: TypeSpacer},
		{Tag: "text-pane", Type: TypeTextPane},
		{Tag: "image-pane", Type: TypeImagePane},
		{Tag: "menu-button", Type: TypeMenuButton},
		{Tag: "date-picker", Type: TypeDatePicker},
		{Tag: "time-picker", Type: TypeTimePicker},
		{Tag: "suggestion-picker", Type: TypeSuggestionPicker},
		{Tag: "activity-indicator", Type: TypeActivityIndicator},
		{Tag: "number-field", Type: TypeNumberField},
		{Tag: "validated-text-field", Type: TypeValidatedTextField},
		{Tag: "chart-pane", Type: TypeChartPane},
	}
}

func prop(name, valueType string) types.Property {
	return types.Property{Name: name, Type: valueType}
}

func enumProp(name, domain string) types.Property {
	return types.Property{Name: name, Type: types.ValueTypeEnum, Domain: domain}
}

// BuiltinTypes returns the metadata table for the built-in component types.
// Each row lists only the properties the type declares itself.
func BuiltinTypes() []types.TypeInfo {
	const (
		vInt    = types.ValueTypeInt
		vLong   = types.ValueTypeLong
		vFloat  = types.ValueTypeFloat
		vDouble = types.ValueTypeDouble
		vChar   = types.ValueTypeChar
		vNumber = types.ValueTypeNumber
		vBool   = types.ValueTypeBoolean
		vString = types.ValueTypeString
		vColor  = types.ValueTypeColor
		vFont   = types.ValueTypeFont
		vIcon   = types.ValueTypeIcon
		vImage  = types.ValueTypeImage
		vKey    = types.ValueTypeKeyStroke
		vObject = types.ValueTypeObject
	)

	return []types.TypeInfo{
		{ID: TypeComponent, Properties: []types.Property{
			prop("background", vColor),
			prop("foreground", vColor),
			prop("font", vFont),
			prop("enabled", vBool),
			prop("visible", vBool),
			prop("focusable", vBool),
			prop("cursor", vObject),
			prop("locale", vObject),
		}},
		{ID: TypeContainer, Base: TypeComponent, Properties: []types.Property{
			prop("layout", vObject),
			prop("focusCycleRoot", vBool),
			prop("focusTraversalPolicyProvider", vBool),
		}},
		{ID: TypeJComponent, Base: TypeContainer, Properties: []types.Property{
			prop("toolTipText", vString),
			prop("opaque", vBool),
			prop("alignmentX", vFloat),
			prop("alignmentY", vFloat),
			prop("autoscrolls", vBool),
			prop("doubleBuffered", vBool),
			prop("inheritsPopupMenu", vBool),
			prop("requestFocusEnabled", vBool),
			prop("border", vObject),
			prop("componentPopupMenu", vObject),
			prop("inputVerifier", vObject),
			prop("preferredSize", vObject),
		}},
		{ID: TypeJLabel, Base: TypeJComponent, Properties: []types.Property{
			prop("text", vString),
			prop("icon", vIcon),
			prop("disabledIcon", vIcon),
			prop("horizontalAlignment", vInt),
			prop("verticalAlignment", vInt),
			prop("horizontalTextPosition", vInt),
			prop("verticalTextPosition", vInt),
			prop("iconTextGap", vInt),
			prop("displayedMnemonic", vInt),
			prop("labelFor", vObject),
		}},
		{ID: TypeAbstractButton, Base: TypeJComponent, Properties: []types.Property{
			prop("text", vString),
			prop("icon", vIcon),
			prop("pressedIcon", vIcon),
			prop("selectedIcon", vIcon),
			prop("rolloverIcon", vIcon),
			prop("disabledIcon", vIcon),
			prop("selected", vBool),
			prop("rolloverEnabled", vBool),
			prop("borderPainted", vBool),
			prop("contentAreaFilled", vBool),
			prop("focusPainted", vBool),
			prop("horizontalAlignment", vInt),
			prop("verticalAlignment", vInt),
			prop("horizontalTextPosition", vInt),
			prop("verticalTextPosition", vInt),
			prop("iconTextGap", vInt),
			prop("mnemonic", vInt),
			prop("actionCommand", vString),
			prop("hideActionText", vBool),
			prop("multiClickThreshhold", vLong),
			prop("action", vObject),
			prop("model", vObject),
		}},
		{ID: TypeJButton, Base: TypeAbstractButton, Properties: []types.Property{
			prop("defaultCapable", vBool),
		}},
		{ID: TypeJToggleButton, Base: TypeAbstractButton},
		{ID: TypeJCheckBox, Base: TypeJToggleButton, Properties: []types.Property{
			prop("borderPaintedFlat", vBool),
		}},
		{ID: TypeJRadioButton, Base: TypeJToggleButton},
		{ID: TypeJMenuItem, Base: TypeAbstractButton, Properties: []types.Property{
			prop("accelerator", vKey),
			prop("armed", vBool),
		}},
		{ID: TypeJCheckBoxMenuItem, Base: TypeJMenuItem, Properties: []types.Property{
			prop("state", vBool),
		}},
		{ID: TypeJRadioButtonMenuItem, Base: TypeJMenuItem},
		{ID: TypeJMenu, Base: TypeJMenuItem, Container: true, Properties: []types.Property{
			prop("delay", vInt),
			prop("popupMenuVisible", vBool),
		}},
		{ID: TypeJMenuBar, Base: TypeJComponent, Container: true, Properties: []types.Property{
			prop("borderPainted", vBool),
			prop("margin", vObject),
		}},
		{ID: TypeJTextComponent, Base: TypeJComponent, Properties: []types.Property{
			prop("text", vString),
			prop("editable", vBool),
			prop("caretColor", vColor),
			prop("selectionColor", vColor),
			prop("selectedTextColor", vColor),
			prop("disabledTextColor", vColor),
			prop("caretPosition", vInt),
			prop("dragEnabled", vBool),
			prop("focusAccelerator", vChar),
			prop("margin", vObject),
			prop("document", vObject),
		}},
		{ID: TypeJTextField, Base: TypeJTextComponent, Properties: []types.Property{
			prop("columns", vInt),
			prop("horizontalAlignment", vInt),
			prop("scrollOffset", vInt),
			prop("actionCommand", vString),
		}},
		{ID: TypeJPasswordField, Base: TypeJTextField, Properties: []types.Property{
			prop("echoChar", vChar),
		}},
		{ID: TypeJFormattedTextField, Base: TypeJTextField, Properties: []types.Property{
			prop("focusLostBehavior", vInt),
			prop("value", vObject),
			prop("formatterFactory", vObject),
		}},
		{ID: TypeJTextArea, Base: TypeJTextComponent, Properties: []types.Property{
			prop("rows", vInt),
			prop("columns", vInt),
			prop("tabSize", vInt),
			prop("lineWrap", vBool),
			prop("wrapStyleWord", vBool),
		}},
		{ID: TypeJEditorPane, Base: TypeJTextComponent, Properties: []types.Property{
			prop("contentType", vString),
			prop("page", vObject),
		}},
		{ID: TypeJComboBox, Base: TypeJComponent, Properties: []types.Property{
			prop("editable", vBool),
			prop("maximumRowCount", vInt),
			prop("selectedIndex", vInt),
			prop("lightWeightPopupEnabled", vBool),
			prop("popupVisible", vBool),
			prop("selectedItem", vObject),
			prop("model", vObject),
		}},
		{ID: TypeJSpinner, Base: TypeJComponent, Properties: []types.Property{
			prop("value", vObject),
			prop("model", vObject),
			prop("editor", vObject),
		}},
		{ID: TypeJSlider, Base: TypeJComponent, Properties: []types.Property{
			prop("orientation", vInt),
			prop("minimum", vInt),
			prop("maximum", vInt),
			prop("value", vInt),
			prop("extent", vInt),
			prop("majorTickSpacing", vInt),
			prop("minorTickSpacing", vInt),
			prop("paintTicks", vBool),
			prop("paintLabels", vBool),
			prop("paintTrack", vBool),
			prop("snapToTicks", vBool),
			prop("inverted", vBool),
		}},
		{ID: TypeJProgressBar, Base: TypeJComponent, Properties: []types.Property{
			prop("orientation", vInt),
			prop("minimum", vInt),
			prop("maximum", vInt),
			prop("value", vInt),
			prop("indeterminate", vBool),
			prop("stringPainted", vBool),
			prop("borderPainted", vBool),
			prop("string", vString),
		}},
		{ID: TypeJSeparator, Base: TypeJComponent, Properties: []types.Property{
			prop("orientation", vInt),
		}},
		{ID: TypeJScrollPane, Base: TypeJComponent, Container: true, Properties: []types.Property{
			prop("horizontalScrollBarPolicy", vInt),
			prop("verticalScrollBarPolicy", vInt),
			prop("wheelScrollingEnabled", vBool),
			prop("viewportView", vObject),
		}},
		{ID: TypeJSplitPane, Base: TypeJComponent, Container: true, Properties: []types.Property{
			prop("orientation", vInt),
			prop("dividerLocation", vInt),
			prop("dividerSize", vInt),
			prop("continuousLayout", vBool),
			prop("oneTouchExpandable", vBool),
			prop("resizeWeight", vDouble),
		}},
		{ID: TypeJTabbedPane, Base: TypeJComponent, Container: true, Properties: []types.Property{
			prop("tabPlacement", vInt),
			prop("tabLayoutPolicy", vInt),
			prop("selectedIndex", vInt),
		}},
		{ID: TypeJToolBar, Base: TypeJComponent, Container: true, Properties: []types.Property{
			prop("orientation", vInt),
			prop("floatable", vBool),
			prop("rollover", vBool),
			prop("borderPainted", vBool),
		}},
		{ID: TypeJList, Base: TypeJComponent, Properties: []types.Property{
			prop("visibleRowCount", vInt),
			prop("selectedIndex", vInt),
			prop("selectionMode", vInt),
			prop("layoutOrientation", vInt),
			prop("fixedCellWidth", vInt),
			prop("fixedCellHeight", vInt),
			prop("selectionBackground", vColor),
			prop("selectionForeground", vColor),
			prop("dragEnabled", vBool),
			prop("model", vObject),
		}},
		{ID: TypeJTable, Base: TypeJComponent, Properties: []types.Property{
			prop("rowHeight", vInt),
			prop("rowMargin", vInt),
			prop("autoResizeMode", vInt),
			prop("showGrid", vBool),
			prop("showHorizontalLines", vBool),
			prop("showVerticalLines", vBool),
			prop("fillsViewportHeight", vBool),
			prop("autoCreateRowSorter", vBool),
			prop("rowSelectionAllowed", vBool),
			prop("columnSelectionAllowed", vBool),
			prop("cellSelectionEnabled", vBool),
			prop("gridColor", vColor),
			prop("selectionBackground", vColor),
			prop("selectionForeground", vColor),
			prop("model", vObject),
		}},
		{ID: TypeJTree, Base: TypeJComponent, Properties: []types.Property{
			prop("rootVisible", vBool),
			prop("showsRootHandles", vBool),
			prop("editable", vBool),
			prop("largeModel", vBool),
			prop("scrollsOnExpand", vBool),
			prop("rowHeight", vInt),
			prop("visibleRowCount", vInt),
			prop("toggleClickCount", vInt),
			prop("model", vObject),
		}},
		{ID: TypeJColorChooser, Base: TypeJComponent, Properties: []types.Property{
			prop("color", vColor),
			prop("dragEnabled", vBool),
		}},
		{ID: TypeJPanel, Base: TypeJComponent, Container: true},

		{ID: TypeLayoutPanel, Base: TypeJPanel},
		{ID: TypeBoxPanel, Base: TypeLayoutPanel, Properties: []types.Property{
			enumProp("horizontalAlignment", DomainHorizontalAlignment),
			enumProp("verticalAlignment", DomainVerticalAlignment),
			prop("spacing", vInt),
		}},
		{ID: TypeRowPanel, Base: TypeBoxPanel, Properties: []types.Property{
			prop("alignToBaseline", vBool),
		}},
		{ID: TypeColumnPanel, Base: TypeBoxPanel, Properties: []types.Property{
			prop("alignToGrid", vBool),
		}},
		{ID: TypeStackPanel, Base: TypeLayoutPanel},
		{ID: TypeSpacer, Base: TypeJComponent},
		{ID: TypeTextPane, Base: TypeJComponent, Properties: []types.Property{
			prop("text", vString),
			enumProp("horizontalAlignment", DomainHorizontalAlignment),
			enumProp("verticalAlignment", DomainVerticalAlignment),
			prop("wrapText", vBool),
		}},
		{ID: TypeImagePane, Base: TypeJComponent, Properties: []types.Property{
			prop("image", vImage),
			enumProp("horizontalAlignment", DomainHorizontalAlignment),
			enumProp("verticalAlignment", DomainVerticalAlignment),
			enumProp("scaleMode", DomainScaleMode),
			prop("scaleToFit", vBool),
		}},
		{ID: TypeMenuButton, Base: TypeJButton, Container: true, Properties: []types.Property{
			prop("popupMenu", vObject),
		}},
		{ID: TypePicker, Base: TypeJTextField, Properties: []types.Property{
			enumProp("popupHorizontalAlignment", DomainHorizontalAlignment),
			enumProp("popupVerticalAlignment", DomainVerticalAlignment),
		}},
		{ID: TypeTemporalPicker, Base: TypePicker},
		{ID: TypeDatePicker, Base: TypeTemporalPicker, Properties: []types.Property{
			prop("date", vObject),
			prop("minimumDate", vObject),
			prop("maximumDate", vObject),
		}},
		{ID: TypeTimePicker, Base: TypeJTextField, Properties: []types.Property{
			prop("time", vObject),
			prop("minimumTime", vObject),
			prop("maximumTime", vObject),
			enumProp("popupHorizontalAlignment", DomainHorizontalAlignment),
			enumProp("popupVerticalAlignment", DomainVerticalAlignment),
		}},
		{ID: TypeSuggestionPicker, Base: TypePicker, Properties: []types.Property{
			prop("suggestions", vObject),
			prop("maximumRowCount", vInt),
		}},
		{ID: TypeActivityIndicator, Base: TypeJComponent},
		{ID: TypeNumberField, Base: TypeJTextField, Properties: []types.Property{
			prop("value", vNumber),
			prop("format", vObject),
		}},
		{ID: TypeValidatedTextField, Base: TypeJTextField, Properties: []types.Property{
			prop("value", vString),
			prop("pattern", vString),
		}},
		{ID: TypeChartPane, Base: TypeJComponent, Properties: []types.Property{
			prop("chart", vObject),
		}},
	}
}

func constants(pairs ...string) []types.Constant {
	out := make([]types.Constant, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, types.Constant{Name: pairs[i], Token: pairs[i+1]})
	}
	return out
}

// BuiltinDomains returns the enumerated domains used by the built-in types
// and by the selector attributes.
func BuiltinDomains() []types.Domain {
	return []types.Domain{
		{Key: DomainHorizontalAlignment, Constants: constants(
			"LEFT", "left", "RIGHT", "right", "CENTER", "center", "LEADING", "leading", "TRAILING", "trailing")},
		{Key: DomainVerticalAlignment, Constants: constants(
			"TOP", "top", "BOTTOM", "bottom", "CENTER", "center")},
		{Key: DomainScaleMode, Constants: constants(
			"NONE", "none", "FILL_WIDTH", "fill-width", "FILL_HEIGHT", "fill-height")},
		{Key: DomainOrientation, Constants: constants(
			"HORIZONTAL", "horizontal", "VERTICAL", "vertical")},
		{Key: DomainFocusLostBehavior, Constants: constants(
			"COMMIT", "commit", "COMMIT_OR_REVERT", "commit-or-revert", "REVERT", "revert", "PERSIST", "persist")},
		{Key: DomainHorizontalScrollBar, Constants: constants(
			"AS_NEEDED", "as-needed", "NEVER", "never", "ALWAYS", "always")},
		{Key: DomainVerticalScrollBar, Constants: constants(
			"AS_NEEDED", "as-needed", "NEVER", "never", "ALWAYS", "always")},
		{Key: DomainTabPlacement, Constants: constants(
			"TOP", "top", "LEFT", "left", "BOTTOM", "bottom", "RIGHT", "right")},
		{Key: DomainTabLayoutPolicy, Constants: constants(
			"WRAP", "wrap", "SCROLL", "scroll")},
	}
}

// BuiltinResolver returns a StaticResolver populated with the built-in types
// and domains.
func BuiltinResolver() *StaticResolver {
	r := NewStaticResolver()
	for _, info := range BuiltinTypes() {
		if err := r.Register(info); err != nil {
			panic(err)
		}
	}
	for _, d := range BuiltinDomains() {
		if err := r.RegisterDomain(d); err != nil {
			panic(err)
		}
	}
	return r
}
