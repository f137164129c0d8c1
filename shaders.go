package main

// Shader sources for the two program kinds the scene layer distinguishes.
// The attribute locations are fixed: 0 = position, 1 = normal.

const simpleVertexShader = `
#version 410 core

layout(location = 0) in vec3 pos;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

void main() {
	gl_Position = projection * view * model * vec4(pos, 1.0);
}
`

const simpleFragmentShader = `
#version 410 core

uniform vec4 color;

out vec4 fragColor;

void main() {
	fragColor = color;
}
`

const normalVertexShader = `
#version 410 core

layout(location = 0) in vec3 pos;
layout(location = 1) in vec3 norm;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

out vec3 fragPos;
out vec3 normal;

void main() {
	vec4 world = model * vec4(pos, 1.0);
	fragPos = world.xyz;
	normal = mat3(transpose(inverse(model))) * norm;
	gl_Position = projection * view * world;
}
`

const normalFragmentShader = `
#version 410 core

in vec3 fragPos;
in vec3 normal;

uniform vec4 color;
uniform vec3 lightPos;
uniform vec4 lightColor;

out vec4 fragColor;

void main() {
	vec3 n = normalize(normal);
	vec3 dir = normalize(lightPos - fragPos);

	float ambient = 0.2;
	float diffuse = max(dot(n, dir), 0.0);

	vec3 lit = (ambient + diffuse) * lightColor.rgb * color.rgb;
	fragColor = vec4(lit, color.a);
}
`
