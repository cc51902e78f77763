package navigation

import "maps"

// Props is the data handed to a view when a route renders.
type Props map[string]any

// PropsMapper derives view props from a navigation target.
type PropsMapper func(to Target) Props

// StaticProps returns a mapper that yields a copy of p for every navigation.
func StaticProps(p Props) PropsMapper {
	return func(Target) Props {
		return maps.Clone(p)
	}
}

// ParamProps returns a mapper that passes the route's path parameters as props.
func ParamProps() PropsMapper {
	return func(to Target) Props {
		props := make(Props, len(to.Params))
		for k, v := range to.Params {
			props[k] = v
		}
		return props
	}
}
