package urls

// Author contact and profile links

// Email is the author's contact address as a mailto URI.
const Email = "mailto:mareddia@protonmail.com"

// GitHub is the author's GitHub profile.
const GitHub = "https://github.com/based-ghost"

// Vendor homepages for the technologies the blog writes about

// Vue is the Vue.js homepage.
const Vue = "https://vuejs.org/"

// Vuex is the Vuex state management library homepage.
const Vuex = "https://vuex.vuejs.org/"

// React is the React homepage.
const React = "https://reactjs.org/"

// Redux is the Redux homepage.
const Redux = "https://redux.js.org/"

// AspNet is the ASP.NET homepage. It points at the generic asp.net site
// rather than the Core documentation.
const AspNet = "https://www.asp.net/"

// TypeScript is the TypeScript homepage.
const TypeScript = "https://www.typescriptlang.org/"
